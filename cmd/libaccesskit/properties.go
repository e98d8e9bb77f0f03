package main

/*
#include "accesskit_types.h"
*/
import "C"

import (
	"github.com/wippyai/accesskit-go/ffi"
	"github.com/wippyai/accesskit-go/tree"
)

// Per-property shims. Getters return owned copies; setters copy their
// input.

//export accesskit_node_is_hidden
func accesskit_node_is_hidden(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_hidden")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagHidden))
}

//export accesskit_node_set_hidden
func accesskit_node_set_hidden(node C.uintptr_t) {
	defer guard("accesskit_node_set_hidden")
	boundary.NodeSetFlag(ref(node), tree.FlagHidden)
}

//export accesskit_node_clear_hidden
func accesskit_node_clear_hidden(node C.uintptr_t) {
	defer guard("accesskit_node_clear_hidden")
	boundary.NodeClearFlag(ref(node), tree.FlagHidden)
}

//export accesskit_node_is_multiselectable
func accesskit_node_is_multiselectable(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_multiselectable")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagMultiselectable))
}

//export accesskit_node_set_multiselectable
func accesskit_node_set_multiselectable(node C.uintptr_t) {
	defer guard("accesskit_node_set_multiselectable")
	boundary.NodeSetFlag(ref(node), tree.FlagMultiselectable)
}

//export accesskit_node_clear_multiselectable
func accesskit_node_clear_multiselectable(node C.uintptr_t) {
	defer guard("accesskit_node_clear_multiselectable")
	boundary.NodeClearFlag(ref(node), tree.FlagMultiselectable)
}

//export accesskit_node_is_required
func accesskit_node_is_required(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_required")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagRequired))
}

//export accesskit_node_set_required
func accesskit_node_set_required(node C.uintptr_t) {
	defer guard("accesskit_node_set_required")
	boundary.NodeSetFlag(ref(node), tree.FlagRequired)
}

//export accesskit_node_clear_required
func accesskit_node_clear_required(node C.uintptr_t) {
	defer guard("accesskit_node_clear_required")
	boundary.NodeClearFlag(ref(node), tree.FlagRequired)
}

//export accesskit_node_is_visited
func accesskit_node_is_visited(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_visited")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagVisited))
}

//export accesskit_node_set_visited
func accesskit_node_set_visited(node C.uintptr_t) {
	defer guard("accesskit_node_set_visited")
	boundary.NodeSetFlag(ref(node), tree.FlagVisited)
}

//export accesskit_node_clear_visited
func accesskit_node_clear_visited(node C.uintptr_t) {
	defer guard("accesskit_node_clear_visited")
	boundary.NodeClearFlag(ref(node), tree.FlagVisited)
}

//export accesskit_node_is_busy
func accesskit_node_is_busy(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_busy")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagBusy))
}

//export accesskit_node_set_busy
func accesskit_node_set_busy(node C.uintptr_t) {
	defer guard("accesskit_node_set_busy")
	boundary.NodeSetFlag(ref(node), tree.FlagBusy)
}

//export accesskit_node_clear_busy
func accesskit_node_clear_busy(node C.uintptr_t) {
	defer guard("accesskit_node_clear_busy")
	boundary.NodeClearFlag(ref(node), tree.FlagBusy)
}

//export accesskit_node_is_live_atomic
func accesskit_node_is_live_atomic(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_live_atomic")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagLiveAtomic))
}

//export accesskit_node_set_live_atomic
func accesskit_node_set_live_atomic(node C.uintptr_t) {
	defer guard("accesskit_node_set_live_atomic")
	boundary.NodeSetFlag(ref(node), tree.FlagLiveAtomic)
}

//export accesskit_node_clear_live_atomic
func accesskit_node_clear_live_atomic(node C.uintptr_t) {
	defer guard("accesskit_node_clear_live_atomic")
	boundary.NodeClearFlag(ref(node), tree.FlagLiveAtomic)
}

//export accesskit_node_is_modal
func accesskit_node_is_modal(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_modal")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagModal))
}

//export accesskit_node_set_modal
func accesskit_node_set_modal(node C.uintptr_t) {
	defer guard("accesskit_node_set_modal")
	boundary.NodeSetFlag(ref(node), tree.FlagModal)
}

//export accesskit_node_clear_modal
func accesskit_node_clear_modal(node C.uintptr_t) {
	defer guard("accesskit_node_clear_modal")
	boundary.NodeClearFlag(ref(node), tree.FlagModal)
}

//export accesskit_node_is_touch_transparent
func accesskit_node_is_touch_transparent(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_touch_transparent")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagTouchTransparent))
}

//export accesskit_node_set_touch_transparent
func accesskit_node_set_touch_transparent(node C.uintptr_t) {
	defer guard("accesskit_node_set_touch_transparent")
	boundary.NodeSetFlag(ref(node), tree.FlagTouchTransparent)
}

//export accesskit_node_clear_touch_transparent
func accesskit_node_clear_touch_transparent(node C.uintptr_t) {
	defer guard("accesskit_node_clear_touch_transparent")
	boundary.NodeClearFlag(ref(node), tree.FlagTouchTransparent)
}

//export accesskit_node_is_read_only
func accesskit_node_is_read_only(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_read_only")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagReadOnly))
}

//export accesskit_node_set_read_only
func accesskit_node_set_read_only(node C.uintptr_t) {
	defer guard("accesskit_node_set_read_only")
	boundary.NodeSetFlag(ref(node), tree.FlagReadOnly)
}

//export accesskit_node_clear_read_only
func accesskit_node_clear_read_only(node C.uintptr_t) {
	defer guard("accesskit_node_clear_read_only")
	boundary.NodeClearFlag(ref(node), tree.FlagReadOnly)
}

//export accesskit_node_is_disabled
func accesskit_node_is_disabled(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_disabled")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagDisabled))
}

//export accesskit_node_set_disabled
func accesskit_node_set_disabled(node C.uintptr_t) {
	defer guard("accesskit_node_set_disabled")
	boundary.NodeSetFlag(ref(node), tree.FlagDisabled)
}

//export accesskit_node_clear_disabled
func accesskit_node_clear_disabled(node C.uintptr_t) {
	defer guard("accesskit_node_clear_disabled")
	boundary.NodeClearFlag(ref(node), tree.FlagDisabled)
}

//export accesskit_node_is_bold
func accesskit_node_is_bold(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_bold")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagBold))
}

//export accesskit_node_set_bold
func accesskit_node_set_bold(node C.uintptr_t) {
	defer guard("accesskit_node_set_bold")
	boundary.NodeSetFlag(ref(node), tree.FlagBold)
}

//export accesskit_node_clear_bold
func accesskit_node_clear_bold(node C.uintptr_t) {
	defer guard("accesskit_node_clear_bold")
	boundary.NodeClearFlag(ref(node), tree.FlagBold)
}

//export accesskit_node_is_italic
func accesskit_node_is_italic(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_italic")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagItalic))
}

//export accesskit_node_set_italic
func accesskit_node_set_italic(node C.uintptr_t) {
	defer guard("accesskit_node_set_italic")
	boundary.NodeSetFlag(ref(node), tree.FlagItalic)
}

//export accesskit_node_clear_italic
func accesskit_node_clear_italic(node C.uintptr_t) {
	defer guard("accesskit_node_clear_italic")
	boundary.NodeClearFlag(ref(node), tree.FlagItalic)
}

//export accesskit_node_clips_children
func accesskit_node_clips_children(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_clips_children")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagClipsChildren))
}

//export accesskit_node_set_clips_children
func accesskit_node_set_clips_children(node C.uintptr_t) {
	defer guard("accesskit_node_set_clips_children")
	boundary.NodeSetFlag(ref(node), tree.FlagClipsChildren)
}

//export accesskit_node_clear_clips_children
func accesskit_node_clear_clips_children(node C.uintptr_t) {
	defer guard("accesskit_node_clear_clips_children")
	boundary.NodeClearFlag(ref(node), tree.FlagClipsChildren)
}

//export accesskit_node_is_line_breaking_object
func accesskit_node_is_line_breaking_object(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_line_breaking_object")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagLineBreakingObject))
}

//export accesskit_node_set_is_line_breaking_object
func accesskit_node_set_is_line_breaking_object(node C.uintptr_t) {
	defer guard("accesskit_node_set_is_line_breaking_object")
	boundary.NodeSetFlag(ref(node), tree.FlagLineBreakingObject)
}

//export accesskit_node_clear_is_line_breaking_object
func accesskit_node_clear_is_line_breaking_object(node C.uintptr_t) {
	defer guard("accesskit_node_clear_is_line_breaking_object")
	boundary.NodeClearFlag(ref(node), tree.FlagLineBreakingObject)
}

//export accesskit_node_is_page_breaking_object
func accesskit_node_is_page_breaking_object(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_page_breaking_object")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagPageBreakingObject))
}

//export accesskit_node_set_is_page_breaking_object
func accesskit_node_set_is_page_breaking_object(node C.uintptr_t) {
	defer guard("accesskit_node_set_is_page_breaking_object")
	boundary.NodeSetFlag(ref(node), tree.FlagPageBreakingObject)
}

//export accesskit_node_clear_is_page_breaking_object
func accesskit_node_clear_is_page_breaking_object(node C.uintptr_t) {
	defer guard("accesskit_node_clear_is_page_breaking_object")
	boundary.NodeClearFlag(ref(node), tree.FlagPageBreakingObject)
}

//export accesskit_node_is_spelling_error
func accesskit_node_is_spelling_error(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_spelling_error")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagSpellingError))
}

//export accesskit_node_set_is_spelling_error
func accesskit_node_set_is_spelling_error(node C.uintptr_t) {
	defer guard("accesskit_node_set_is_spelling_error")
	boundary.NodeSetFlag(ref(node), tree.FlagSpellingError)
}

//export accesskit_node_clear_is_spelling_error
func accesskit_node_clear_is_spelling_error(node C.uintptr_t) {
	defer guard("accesskit_node_clear_is_spelling_error")
	boundary.NodeClearFlag(ref(node), tree.FlagSpellingError)
}

//export accesskit_node_is_grammar_error
func accesskit_node_is_grammar_error(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_grammar_error")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagGrammarError))
}

//export accesskit_node_set_is_grammar_error
func accesskit_node_set_is_grammar_error(node C.uintptr_t) {
	defer guard("accesskit_node_set_is_grammar_error")
	boundary.NodeSetFlag(ref(node), tree.FlagGrammarError)
}

//export accesskit_node_clear_is_grammar_error
func accesskit_node_clear_is_grammar_error(node C.uintptr_t) {
	defer guard("accesskit_node_clear_is_grammar_error")
	boundary.NodeClearFlag(ref(node), tree.FlagGrammarError)
}

//export accesskit_node_is_search_match
func accesskit_node_is_search_match(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_search_match")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagSearchMatch))
}

//export accesskit_node_set_is_search_match
func accesskit_node_set_is_search_match(node C.uintptr_t) {
	defer guard("accesskit_node_set_is_search_match")
	boundary.NodeSetFlag(ref(node), tree.FlagSearchMatch)
}

//export accesskit_node_clear_is_search_match
func accesskit_node_clear_is_search_match(node C.uintptr_t) {
	defer guard("accesskit_node_clear_is_search_match")
	boundary.NodeClearFlag(ref(node), tree.FlagSearchMatch)
}

//export accesskit_node_is_suggestion
func accesskit_node_is_suggestion(node C.uintptr_t) C.bool {
	defer guard("accesskit_node_is_suggestion")
	return C.bool(boundary.NodeFlag(ref(node), tree.FlagSuggestion))
}

//export accesskit_node_set_is_suggestion
func accesskit_node_set_is_suggestion(node C.uintptr_t) {
	defer guard("accesskit_node_set_is_suggestion")
	boundary.NodeSetFlag(ref(node), tree.FlagSuggestion)
}

//export accesskit_node_clear_is_suggestion
func accesskit_node_clear_is_suggestion(node C.uintptr_t) {
	defer guard("accesskit_node_clear_is_suggestion")
	boundary.NodeClearFlag(ref(node), tree.FlagSuggestion)
}

//export accesskit_node_children
func accesskit_node_children(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_children")
	return C.uintptr_t(ffi.GetNodeIDs(boundary, ref(node), tree.PropChildren))
}

//export accesskit_node_set_children
func accesskit_node_set_children(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_children")
	ffi.SetNodeIDs(boundary, ref(node), tree.PropChildren, uintptr(length), addr(values))
}

//export accesskit_node_push_child
func accesskit_node_push_child(node C.uintptr_t, item C.accesskit_node_id) {
	defer guard("accesskit_node_push_child")
	ffi.PushNodeID(boundary, ref(node), tree.PropChildren, tree.NodeID(item))
}

//export accesskit_node_clear_children
func accesskit_node_clear_children(node C.uintptr_t) {
	defer guard("accesskit_node_clear_children")
	ffi.ClearVec(boundary, ref(node), tree.PropChildren)
}

//export accesskit_node_controls
func accesskit_node_controls(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_controls")
	return C.uintptr_t(ffi.GetNodeIDs(boundary, ref(node), tree.PropControls))
}

//export accesskit_node_set_controls
func accesskit_node_set_controls(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_controls")
	ffi.SetNodeIDs(boundary, ref(node), tree.PropControls, uintptr(length), addr(values))
}

//export accesskit_node_push_controlled
func accesskit_node_push_controlled(node C.uintptr_t, item C.accesskit_node_id) {
	defer guard("accesskit_node_push_controlled")
	ffi.PushNodeID(boundary, ref(node), tree.PropControls, tree.NodeID(item))
}

//export accesskit_node_clear_controls
func accesskit_node_clear_controls(node C.uintptr_t) {
	defer guard("accesskit_node_clear_controls")
	ffi.ClearVec(boundary, ref(node), tree.PropControls)
}

//export accesskit_node_details
func accesskit_node_details(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_details")
	return C.uintptr_t(ffi.GetNodeIDs(boundary, ref(node), tree.PropDetails))
}

//export accesskit_node_set_details
func accesskit_node_set_details(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_details")
	ffi.SetNodeIDs(boundary, ref(node), tree.PropDetails, uintptr(length), addr(values))
}

//export accesskit_node_push_detail
func accesskit_node_push_detail(node C.uintptr_t, item C.accesskit_node_id) {
	defer guard("accesskit_node_push_detail")
	ffi.PushNodeID(boundary, ref(node), tree.PropDetails, tree.NodeID(item))
}

//export accesskit_node_clear_details
func accesskit_node_clear_details(node C.uintptr_t) {
	defer guard("accesskit_node_clear_details")
	ffi.ClearVec(boundary, ref(node), tree.PropDetails)
}

//export accesskit_node_described_by
func accesskit_node_described_by(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_described_by")
	return C.uintptr_t(ffi.GetNodeIDs(boundary, ref(node), tree.PropDescribedBy))
}

//export accesskit_node_set_described_by
func accesskit_node_set_described_by(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_described_by")
	ffi.SetNodeIDs(boundary, ref(node), tree.PropDescribedBy, uintptr(length), addr(values))
}

//export accesskit_node_push_described_by
func accesskit_node_push_described_by(node C.uintptr_t, item C.accesskit_node_id) {
	defer guard("accesskit_node_push_described_by")
	ffi.PushNodeID(boundary, ref(node), tree.PropDescribedBy, tree.NodeID(item))
}

//export accesskit_node_clear_described_by
func accesskit_node_clear_described_by(node C.uintptr_t) {
	defer guard("accesskit_node_clear_described_by")
	ffi.ClearVec(boundary, ref(node), tree.PropDescribedBy)
}

//export accesskit_node_flow_to
func accesskit_node_flow_to(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_flow_to")
	return C.uintptr_t(ffi.GetNodeIDs(boundary, ref(node), tree.PropFlowTo))
}

//export accesskit_node_set_flow_to
func accesskit_node_set_flow_to(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_flow_to")
	ffi.SetNodeIDs(boundary, ref(node), tree.PropFlowTo, uintptr(length), addr(values))
}

//export accesskit_node_push_flow_to
func accesskit_node_push_flow_to(node C.uintptr_t, item C.accesskit_node_id) {
	defer guard("accesskit_node_push_flow_to")
	ffi.PushNodeID(boundary, ref(node), tree.PropFlowTo, tree.NodeID(item))
}

//export accesskit_node_clear_flow_to
func accesskit_node_clear_flow_to(node C.uintptr_t) {
	defer guard("accesskit_node_clear_flow_to")
	ffi.ClearVec(boundary, ref(node), tree.PropFlowTo)
}

//export accesskit_node_labelled_by
func accesskit_node_labelled_by(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_labelled_by")
	return C.uintptr_t(ffi.GetNodeIDs(boundary, ref(node), tree.PropLabelledBy))
}

//export accesskit_node_set_labelled_by
func accesskit_node_set_labelled_by(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_labelled_by")
	ffi.SetNodeIDs(boundary, ref(node), tree.PropLabelledBy, uintptr(length), addr(values))
}

//export accesskit_node_push_labelled_by
func accesskit_node_push_labelled_by(node C.uintptr_t, item C.accesskit_node_id) {
	defer guard("accesskit_node_push_labelled_by")
	ffi.PushNodeID(boundary, ref(node), tree.PropLabelledBy, tree.NodeID(item))
}

//export accesskit_node_clear_labelled_by
func accesskit_node_clear_labelled_by(node C.uintptr_t) {
	defer guard("accesskit_node_clear_labelled_by")
	ffi.ClearVec(boundary, ref(node), tree.PropLabelledBy)
}

//export accesskit_node_owns
func accesskit_node_owns(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_owns")
	return C.uintptr_t(ffi.GetNodeIDs(boundary, ref(node), tree.PropOwns))
}

//export accesskit_node_set_owns
func accesskit_node_set_owns(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_owns")
	ffi.SetNodeIDs(boundary, ref(node), tree.PropOwns, uintptr(length), addr(values))
}

//export accesskit_node_push_owned
func accesskit_node_push_owned(node C.uintptr_t, item C.accesskit_node_id) {
	defer guard("accesskit_node_push_owned")
	ffi.PushNodeID(boundary, ref(node), tree.PropOwns, tree.NodeID(item))
}

//export accesskit_node_clear_owns
func accesskit_node_clear_owns(node C.uintptr_t) {
	defer guard("accesskit_node_clear_owns")
	ffi.ClearVec(boundary, ref(node), tree.PropOwns)
}

//export accesskit_node_radio_group
func accesskit_node_radio_group(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_radio_group")
	return C.uintptr_t(ffi.GetNodeIDs(boundary, ref(node), tree.PropRadioGroup))
}

//export accesskit_node_set_radio_group
func accesskit_node_set_radio_group(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_radio_group")
	ffi.SetNodeIDs(boundary, ref(node), tree.PropRadioGroup, uintptr(length), addr(values))
}

//export accesskit_node_push_to_radio_group
func accesskit_node_push_to_radio_group(node C.uintptr_t, item C.accesskit_node_id) {
	defer guard("accesskit_node_push_to_radio_group")
	ffi.PushNodeID(boundary, ref(node), tree.PropRadioGroup, tree.NodeID(item))
}

//export accesskit_node_clear_radio_group
func accesskit_node_clear_radio_group(node C.uintptr_t) {
	defer guard("accesskit_node_clear_radio_group")
	ffi.ClearVec(boundary, ref(node), tree.PropRadioGroup)
}

//export accesskit_node_active_descendant
func accesskit_node_active_descendant(node C.uintptr_t) C.accesskit_opt_node_id {
	defer guard("accesskit_node_active_descendant")
	return optNodeID(ffi.Get(boundary, ref(node), tree.PropActiveDescendant))
}

//export accesskit_node_set_active_descendant
func accesskit_node_set_active_descendant(node C.uintptr_t, value C.accesskit_node_id) {
	defer guard("accesskit_node_set_active_descendant")
	ffi.Set(boundary, ref(node), tree.PropActiveDescendant, tree.NodeID(value))
}

//export accesskit_node_clear_active_descendant
func accesskit_node_clear_active_descendant(node C.uintptr_t) {
	defer guard("accesskit_node_clear_active_descendant")
	ffi.Clear(boundary, ref(node), tree.PropActiveDescendant)
}

//export accesskit_node_error_message
func accesskit_node_error_message(node C.uintptr_t) C.accesskit_opt_node_id {
	defer guard("accesskit_node_error_message")
	return optNodeID(ffi.Get(boundary, ref(node), tree.PropErrorMessage))
}

//export accesskit_node_set_error_message
func accesskit_node_set_error_message(node C.uintptr_t, value C.accesskit_node_id) {
	defer guard("accesskit_node_set_error_message")
	ffi.Set(boundary, ref(node), tree.PropErrorMessage, tree.NodeID(value))
}

//export accesskit_node_clear_error_message
func accesskit_node_clear_error_message(node C.uintptr_t) {
	defer guard("accesskit_node_clear_error_message")
	ffi.Clear(boundary, ref(node), tree.PropErrorMessage)
}

//export accesskit_node_in_page_link_target
func accesskit_node_in_page_link_target(node C.uintptr_t) C.accesskit_opt_node_id {
	defer guard("accesskit_node_in_page_link_target")
	return optNodeID(ffi.Get(boundary, ref(node), tree.PropInPageLinkTarget))
}

//export accesskit_node_set_in_page_link_target
func accesskit_node_set_in_page_link_target(node C.uintptr_t, value C.accesskit_node_id) {
	defer guard("accesskit_node_set_in_page_link_target")
	ffi.Set(boundary, ref(node), tree.PropInPageLinkTarget, tree.NodeID(value))
}

//export accesskit_node_clear_in_page_link_target
func accesskit_node_clear_in_page_link_target(node C.uintptr_t) {
	defer guard("accesskit_node_clear_in_page_link_target")
	ffi.Clear(boundary, ref(node), tree.PropInPageLinkTarget)
}

//export accesskit_node_member_of
func accesskit_node_member_of(node C.uintptr_t) C.accesskit_opt_node_id {
	defer guard("accesskit_node_member_of")
	return optNodeID(ffi.Get(boundary, ref(node), tree.PropMemberOf))
}

//export accesskit_node_set_member_of
func accesskit_node_set_member_of(node C.uintptr_t, value C.accesskit_node_id) {
	defer guard("accesskit_node_set_member_of")
	ffi.Set(boundary, ref(node), tree.PropMemberOf, tree.NodeID(value))
}

//export accesskit_node_clear_member_of
func accesskit_node_clear_member_of(node C.uintptr_t) {
	defer guard("accesskit_node_clear_member_of")
	ffi.Clear(boundary, ref(node), tree.PropMemberOf)
}

//export accesskit_node_next_on_line
func accesskit_node_next_on_line(node C.uintptr_t) C.accesskit_opt_node_id {
	defer guard("accesskit_node_next_on_line")
	return optNodeID(ffi.Get(boundary, ref(node), tree.PropNextOnLine))
}

//export accesskit_node_set_next_on_line
func accesskit_node_set_next_on_line(node C.uintptr_t, value C.accesskit_node_id) {
	defer guard("accesskit_node_set_next_on_line")
	ffi.Set(boundary, ref(node), tree.PropNextOnLine, tree.NodeID(value))
}

//export accesskit_node_clear_next_on_line
func accesskit_node_clear_next_on_line(node C.uintptr_t) {
	defer guard("accesskit_node_clear_next_on_line")
	ffi.Clear(boundary, ref(node), tree.PropNextOnLine)
}

//export accesskit_node_previous_on_line
func accesskit_node_previous_on_line(node C.uintptr_t) C.accesskit_opt_node_id {
	defer guard("accesskit_node_previous_on_line")
	return optNodeID(ffi.Get(boundary, ref(node), tree.PropPreviousOnLine))
}

//export accesskit_node_set_previous_on_line
func accesskit_node_set_previous_on_line(node C.uintptr_t, value C.accesskit_node_id) {
	defer guard("accesskit_node_set_previous_on_line")
	ffi.Set(boundary, ref(node), tree.PropPreviousOnLine, tree.NodeID(value))
}

//export accesskit_node_clear_previous_on_line
func accesskit_node_clear_previous_on_line(node C.uintptr_t) {
	defer guard("accesskit_node_clear_previous_on_line")
	ffi.Clear(boundary, ref(node), tree.PropPreviousOnLine)
}

//export accesskit_node_popup_for
func accesskit_node_popup_for(node C.uintptr_t) C.accesskit_opt_node_id {
	defer guard("accesskit_node_popup_for")
	return optNodeID(ffi.Get(boundary, ref(node), tree.PropPopupFor))
}

//export accesskit_node_set_popup_for
func accesskit_node_set_popup_for(node C.uintptr_t, value C.accesskit_node_id) {
	defer guard("accesskit_node_set_popup_for")
	ffi.Set(boundary, ref(node), tree.PropPopupFor, tree.NodeID(value))
}

//export accesskit_node_clear_popup_for
func accesskit_node_clear_popup_for(node C.uintptr_t) {
	defer guard("accesskit_node_clear_popup_for")
	ffi.Clear(boundary, ref(node), tree.PropPopupFor)
}

//export accesskit_node_label
func accesskit_node_label(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_label")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropLabel))
}

//export accesskit_node_set_label
func accesskit_node_set_label(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_label")
	ffi.SetString(boundary, ref(node), tree.PropLabel, addr(value))
}

//export accesskit_node_set_label_with_length
func accesskit_node_set_label_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_label_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropLabel, addr(value), uintptr(length))
}

//export accesskit_node_clear_label
func accesskit_node_clear_label(node C.uintptr_t) {
	defer guard("accesskit_node_clear_label")
	ffi.Clear(boundary, ref(node), tree.PropLabel)
}

//export accesskit_node_description
func accesskit_node_description(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_description")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropDescription))
}

//export accesskit_node_set_description
func accesskit_node_set_description(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_description")
	ffi.SetString(boundary, ref(node), tree.PropDescription, addr(value))
}

//export accesskit_node_set_description_with_length
func accesskit_node_set_description_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_description_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropDescription, addr(value), uintptr(length))
}

//export accesskit_node_clear_description
func accesskit_node_clear_description(node C.uintptr_t) {
	defer guard("accesskit_node_clear_description")
	ffi.Clear(boundary, ref(node), tree.PropDescription)
}

//export accesskit_node_value
func accesskit_node_value(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_value")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropValue))
}

//export accesskit_node_set_value
func accesskit_node_set_value(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_value")
	ffi.SetString(boundary, ref(node), tree.PropValue, addr(value))
}

//export accesskit_node_set_value_with_length
func accesskit_node_set_value_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_value_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropValue, addr(value), uintptr(length))
}

//export accesskit_node_clear_value
func accesskit_node_clear_value(node C.uintptr_t) {
	defer guard("accesskit_node_clear_value")
	ffi.Clear(boundary, ref(node), tree.PropValue)
}

//export accesskit_node_access_key
func accesskit_node_access_key(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_access_key")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropAccessKey))
}

//export accesskit_node_set_access_key
func accesskit_node_set_access_key(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_access_key")
	ffi.SetString(boundary, ref(node), tree.PropAccessKey, addr(value))
}

//export accesskit_node_set_access_key_with_length
func accesskit_node_set_access_key_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_access_key_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropAccessKey, addr(value), uintptr(length))
}

//export accesskit_node_clear_access_key
func accesskit_node_clear_access_key(node C.uintptr_t) {
	defer guard("accesskit_node_clear_access_key")
	ffi.Clear(boundary, ref(node), tree.PropAccessKey)
}

//export accesskit_node_author_id
func accesskit_node_author_id(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_author_id")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropAuthorID))
}

//export accesskit_node_set_author_id
func accesskit_node_set_author_id(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_author_id")
	ffi.SetString(boundary, ref(node), tree.PropAuthorID, addr(value))
}

//export accesskit_node_set_author_id_with_length
func accesskit_node_set_author_id_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_author_id_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropAuthorID, addr(value), uintptr(length))
}

//export accesskit_node_clear_author_id
func accesskit_node_clear_author_id(node C.uintptr_t) {
	defer guard("accesskit_node_clear_author_id")
	ffi.Clear(boundary, ref(node), tree.PropAuthorID)
}

//export accesskit_node_class_name
func accesskit_node_class_name(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_class_name")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropClassName))
}

//export accesskit_node_set_class_name
func accesskit_node_set_class_name(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_class_name")
	ffi.SetString(boundary, ref(node), tree.PropClassName, addr(value))
}

//export accesskit_node_set_class_name_with_length
func accesskit_node_set_class_name_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_class_name_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropClassName, addr(value), uintptr(length))
}

//export accesskit_node_clear_class_name
func accesskit_node_clear_class_name(node C.uintptr_t) {
	defer guard("accesskit_node_clear_class_name")
	ffi.Clear(boundary, ref(node), tree.PropClassName)
}

//export accesskit_node_font_family
func accesskit_node_font_family(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_font_family")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropFontFamily))
}

//export accesskit_node_set_font_family
func accesskit_node_set_font_family(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_font_family")
	ffi.SetString(boundary, ref(node), tree.PropFontFamily, addr(value))
}

//export accesskit_node_set_font_family_with_length
func accesskit_node_set_font_family_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_font_family_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropFontFamily, addr(value), uintptr(length))
}

//export accesskit_node_clear_font_family
func accesskit_node_clear_font_family(node C.uintptr_t) {
	defer guard("accesskit_node_clear_font_family")
	ffi.Clear(boundary, ref(node), tree.PropFontFamily)
}

//export accesskit_node_html_tag
func accesskit_node_html_tag(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_html_tag")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropHTMLTag))
}

//export accesskit_node_set_html_tag
func accesskit_node_set_html_tag(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_html_tag")
	ffi.SetString(boundary, ref(node), tree.PropHTMLTag, addr(value))
}

//export accesskit_node_set_html_tag_with_length
func accesskit_node_set_html_tag_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_html_tag_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropHTMLTag, addr(value), uintptr(length))
}

//export accesskit_node_clear_html_tag
func accesskit_node_clear_html_tag(node C.uintptr_t) {
	defer guard("accesskit_node_clear_html_tag")
	ffi.Clear(boundary, ref(node), tree.PropHTMLTag)
}

//export accesskit_node_inner_html
func accesskit_node_inner_html(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_inner_html")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropInnerHTML))
}

//export accesskit_node_set_inner_html
func accesskit_node_set_inner_html(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_inner_html")
	ffi.SetString(boundary, ref(node), tree.PropInnerHTML, addr(value))
}

//export accesskit_node_set_inner_html_with_length
func accesskit_node_set_inner_html_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_inner_html_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropInnerHTML, addr(value), uintptr(length))
}

//export accesskit_node_clear_inner_html
func accesskit_node_clear_inner_html(node C.uintptr_t) {
	defer guard("accesskit_node_clear_inner_html")
	ffi.Clear(boundary, ref(node), tree.PropInnerHTML)
}

//export accesskit_node_keyboard_shortcut
func accesskit_node_keyboard_shortcut(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_keyboard_shortcut")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropKeyboardShortcut))
}

//export accesskit_node_set_keyboard_shortcut
func accesskit_node_set_keyboard_shortcut(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_keyboard_shortcut")
	ffi.SetString(boundary, ref(node), tree.PropKeyboardShortcut, addr(value))
}

//export accesskit_node_set_keyboard_shortcut_with_length
func accesskit_node_set_keyboard_shortcut_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_keyboard_shortcut_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropKeyboardShortcut, addr(value), uintptr(length))
}

//export accesskit_node_clear_keyboard_shortcut
func accesskit_node_clear_keyboard_shortcut(node C.uintptr_t) {
	defer guard("accesskit_node_clear_keyboard_shortcut")
	ffi.Clear(boundary, ref(node), tree.PropKeyboardShortcut)
}

//export accesskit_node_language
func accesskit_node_language(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_language")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropLanguage))
}

//export accesskit_node_set_language
func accesskit_node_set_language(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_language")
	ffi.SetString(boundary, ref(node), tree.PropLanguage, addr(value))
}

//export accesskit_node_set_language_with_length
func accesskit_node_set_language_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_language_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropLanguage, addr(value), uintptr(length))
}

//export accesskit_node_clear_language
func accesskit_node_clear_language(node C.uintptr_t) {
	defer guard("accesskit_node_clear_language")
	ffi.Clear(boundary, ref(node), tree.PropLanguage)
}

//export accesskit_node_placeholder
func accesskit_node_placeholder(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_placeholder")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropPlaceholder))
}

//export accesskit_node_set_placeholder
func accesskit_node_set_placeholder(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_placeholder")
	ffi.SetString(boundary, ref(node), tree.PropPlaceholder, addr(value))
}

//export accesskit_node_set_placeholder_with_length
func accesskit_node_set_placeholder_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_placeholder_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropPlaceholder, addr(value), uintptr(length))
}

//export accesskit_node_clear_placeholder
func accesskit_node_clear_placeholder(node C.uintptr_t) {
	defer guard("accesskit_node_clear_placeholder")
	ffi.Clear(boundary, ref(node), tree.PropPlaceholder)
}

//export accesskit_node_role_description
func accesskit_node_role_description(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_role_description")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropRoleDescription))
}

//export accesskit_node_set_role_description
func accesskit_node_set_role_description(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_role_description")
	ffi.SetString(boundary, ref(node), tree.PropRoleDescription, addr(value))
}

//export accesskit_node_set_role_description_with_length
func accesskit_node_set_role_description_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_role_description_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropRoleDescription, addr(value), uintptr(length))
}

//export accesskit_node_clear_role_description
func accesskit_node_clear_role_description(node C.uintptr_t) {
	defer guard("accesskit_node_clear_role_description")
	ffi.Clear(boundary, ref(node), tree.PropRoleDescription)
}

//export accesskit_node_state_description
func accesskit_node_state_description(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_state_description")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropStateDescription))
}

//export accesskit_node_set_state_description
func accesskit_node_set_state_description(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_state_description")
	ffi.SetString(boundary, ref(node), tree.PropStateDescription, addr(value))
}

//export accesskit_node_set_state_description_with_length
func accesskit_node_set_state_description_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_state_description_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropStateDescription, addr(value), uintptr(length))
}

//export accesskit_node_clear_state_description
func accesskit_node_clear_state_description(node C.uintptr_t) {
	defer guard("accesskit_node_clear_state_description")
	ffi.Clear(boundary, ref(node), tree.PropStateDescription)
}

//export accesskit_node_tooltip
func accesskit_node_tooltip(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_tooltip")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropTooltip))
}

//export accesskit_node_set_tooltip
func accesskit_node_set_tooltip(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_tooltip")
	ffi.SetString(boundary, ref(node), tree.PropTooltip, addr(value))
}

//export accesskit_node_set_tooltip_with_length
func accesskit_node_set_tooltip_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_tooltip_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropTooltip, addr(value), uintptr(length))
}

//export accesskit_node_clear_tooltip
func accesskit_node_clear_tooltip(node C.uintptr_t) {
	defer guard("accesskit_node_clear_tooltip")
	ffi.Clear(boundary, ref(node), tree.PropTooltip)
}

//export accesskit_node_url
func accesskit_node_url(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_url")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropURL))
}

//export accesskit_node_set_url
func accesskit_node_set_url(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_url")
	ffi.SetString(boundary, ref(node), tree.PropURL, addr(value))
}

//export accesskit_node_set_url_with_length
func accesskit_node_set_url_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_url_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropURL, addr(value), uintptr(length))
}

//export accesskit_node_clear_url
func accesskit_node_clear_url(node C.uintptr_t) {
	defer guard("accesskit_node_clear_url")
	ffi.Clear(boundary, ref(node), tree.PropURL)
}

//export accesskit_node_row_index_text
func accesskit_node_row_index_text(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_row_index_text")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropRowIndexText))
}

//export accesskit_node_set_row_index_text
func accesskit_node_set_row_index_text(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_row_index_text")
	ffi.SetString(boundary, ref(node), tree.PropRowIndexText, addr(value))
}

//export accesskit_node_set_row_index_text_with_length
func accesskit_node_set_row_index_text_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_row_index_text_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropRowIndexText, addr(value), uintptr(length))
}

//export accesskit_node_clear_row_index_text
func accesskit_node_clear_row_index_text(node C.uintptr_t) {
	defer guard("accesskit_node_clear_row_index_text")
	ffi.Clear(boundary, ref(node), tree.PropRowIndexText)
}

//export accesskit_node_column_index_text
func accesskit_node_column_index_text(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_column_index_text")
	return C.uintptr_t(ffi.GetString(boundary, ref(node), tree.PropColumnIndexText))
}

//export accesskit_node_set_column_index_text
func accesskit_node_set_column_index_text(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_column_index_text")
	ffi.SetString(boundary, ref(node), tree.PropColumnIndexText, addr(value))
}

//export accesskit_node_set_column_index_text_with_length
func accesskit_node_set_column_index_text_with_length(node C.uintptr_t, length C.size_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_column_index_text_with_length")
	ffi.SetStringWithLength(boundary, ref(node), tree.PropColumnIndexText, addr(value), uintptr(length))
}

//export accesskit_node_clear_column_index_text
func accesskit_node_clear_column_index_text(node C.uintptr_t) {
	defer guard("accesskit_node_clear_column_index_text")
	ffi.Clear(boundary, ref(node), tree.PropColumnIndexText)
}

//export accesskit_node_scroll_x
func accesskit_node_scroll_x(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_scroll_x")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropScrollX))
}

//export accesskit_node_set_scroll_x
func accesskit_node_set_scroll_x(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_scroll_x")
	ffi.Set(boundary, ref(node), tree.PropScrollX, float64(value))
}

//export accesskit_node_clear_scroll_x
func accesskit_node_clear_scroll_x(node C.uintptr_t) {
	defer guard("accesskit_node_clear_scroll_x")
	ffi.Clear(boundary, ref(node), tree.PropScrollX)
}

//export accesskit_node_scroll_x_min
func accesskit_node_scroll_x_min(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_scroll_x_min")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropScrollXMin))
}

//export accesskit_node_set_scroll_x_min
func accesskit_node_set_scroll_x_min(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_scroll_x_min")
	ffi.Set(boundary, ref(node), tree.PropScrollXMin, float64(value))
}

//export accesskit_node_clear_scroll_x_min
func accesskit_node_clear_scroll_x_min(node C.uintptr_t) {
	defer guard("accesskit_node_clear_scroll_x_min")
	ffi.Clear(boundary, ref(node), tree.PropScrollXMin)
}

//export accesskit_node_scroll_x_max
func accesskit_node_scroll_x_max(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_scroll_x_max")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropScrollXMax))
}

//export accesskit_node_set_scroll_x_max
func accesskit_node_set_scroll_x_max(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_scroll_x_max")
	ffi.Set(boundary, ref(node), tree.PropScrollXMax, float64(value))
}

//export accesskit_node_clear_scroll_x_max
func accesskit_node_clear_scroll_x_max(node C.uintptr_t) {
	defer guard("accesskit_node_clear_scroll_x_max")
	ffi.Clear(boundary, ref(node), tree.PropScrollXMax)
}

//export accesskit_node_scroll_y
func accesskit_node_scroll_y(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_scroll_y")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropScrollY))
}

//export accesskit_node_set_scroll_y
func accesskit_node_set_scroll_y(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_scroll_y")
	ffi.Set(boundary, ref(node), tree.PropScrollY, float64(value))
}

//export accesskit_node_clear_scroll_y
func accesskit_node_clear_scroll_y(node C.uintptr_t) {
	defer guard("accesskit_node_clear_scroll_y")
	ffi.Clear(boundary, ref(node), tree.PropScrollY)
}

//export accesskit_node_scroll_y_min
func accesskit_node_scroll_y_min(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_scroll_y_min")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropScrollYMin))
}

//export accesskit_node_set_scroll_y_min
func accesskit_node_set_scroll_y_min(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_scroll_y_min")
	ffi.Set(boundary, ref(node), tree.PropScrollYMin, float64(value))
}

//export accesskit_node_clear_scroll_y_min
func accesskit_node_clear_scroll_y_min(node C.uintptr_t) {
	defer guard("accesskit_node_clear_scroll_y_min")
	ffi.Clear(boundary, ref(node), tree.PropScrollYMin)
}

//export accesskit_node_scroll_y_max
func accesskit_node_scroll_y_max(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_scroll_y_max")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropScrollYMax))
}

//export accesskit_node_set_scroll_y_max
func accesskit_node_set_scroll_y_max(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_scroll_y_max")
	ffi.Set(boundary, ref(node), tree.PropScrollYMax, float64(value))
}

//export accesskit_node_clear_scroll_y_max
func accesskit_node_clear_scroll_y_max(node C.uintptr_t) {
	defer guard("accesskit_node_clear_scroll_y_max")
	ffi.Clear(boundary, ref(node), tree.PropScrollYMax)
}

//export accesskit_node_numeric_value
func accesskit_node_numeric_value(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_numeric_value")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropNumericValue))
}

//export accesskit_node_set_numeric_value
func accesskit_node_set_numeric_value(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_numeric_value")
	ffi.Set(boundary, ref(node), tree.PropNumericValue, float64(value))
}

//export accesskit_node_clear_numeric_value
func accesskit_node_clear_numeric_value(node C.uintptr_t) {
	defer guard("accesskit_node_clear_numeric_value")
	ffi.Clear(boundary, ref(node), tree.PropNumericValue)
}

//export accesskit_node_min_numeric_value
func accesskit_node_min_numeric_value(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_min_numeric_value")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropMinNumericValue))
}

//export accesskit_node_set_min_numeric_value
func accesskit_node_set_min_numeric_value(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_min_numeric_value")
	ffi.Set(boundary, ref(node), tree.PropMinNumericValue, float64(value))
}

//export accesskit_node_clear_min_numeric_value
func accesskit_node_clear_min_numeric_value(node C.uintptr_t) {
	defer guard("accesskit_node_clear_min_numeric_value")
	ffi.Clear(boundary, ref(node), tree.PropMinNumericValue)
}

//export accesskit_node_max_numeric_value
func accesskit_node_max_numeric_value(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_max_numeric_value")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropMaxNumericValue))
}

//export accesskit_node_set_max_numeric_value
func accesskit_node_set_max_numeric_value(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_max_numeric_value")
	ffi.Set(boundary, ref(node), tree.PropMaxNumericValue, float64(value))
}

//export accesskit_node_clear_max_numeric_value
func accesskit_node_clear_max_numeric_value(node C.uintptr_t) {
	defer guard("accesskit_node_clear_max_numeric_value")
	ffi.Clear(boundary, ref(node), tree.PropMaxNumericValue)
}

//export accesskit_node_numeric_value_step
func accesskit_node_numeric_value_step(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_numeric_value_step")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropNumericValueStep))
}

//export accesskit_node_set_numeric_value_step
func accesskit_node_set_numeric_value_step(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_numeric_value_step")
	ffi.Set(boundary, ref(node), tree.PropNumericValueStep, float64(value))
}

//export accesskit_node_clear_numeric_value_step
func accesskit_node_clear_numeric_value_step(node C.uintptr_t) {
	defer guard("accesskit_node_clear_numeric_value_step")
	ffi.Clear(boundary, ref(node), tree.PropNumericValueStep)
}

//export accesskit_node_numeric_value_jump
func accesskit_node_numeric_value_jump(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_numeric_value_jump")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropNumericValueJump))
}

//export accesskit_node_set_numeric_value_jump
func accesskit_node_set_numeric_value_jump(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_numeric_value_jump")
	ffi.Set(boundary, ref(node), tree.PropNumericValueJump, float64(value))
}

//export accesskit_node_clear_numeric_value_jump
func accesskit_node_clear_numeric_value_jump(node C.uintptr_t) {
	defer guard("accesskit_node_clear_numeric_value_jump")
	ffi.Clear(boundary, ref(node), tree.PropNumericValueJump)
}

//export accesskit_node_font_size
func accesskit_node_font_size(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_font_size")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropFontSize))
}

//export accesskit_node_set_font_size
func accesskit_node_set_font_size(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_font_size")
	ffi.Set(boundary, ref(node), tree.PropFontSize, float64(value))
}

//export accesskit_node_clear_font_size
func accesskit_node_clear_font_size(node C.uintptr_t) {
	defer guard("accesskit_node_clear_font_size")
	ffi.Clear(boundary, ref(node), tree.PropFontSize)
}

//export accesskit_node_font_weight
func accesskit_node_font_weight(node C.uintptr_t) C.accesskit_opt_double {
	defer guard("accesskit_node_font_weight")
	return optDouble(ffi.Get(boundary, ref(node), tree.PropFontWeight))
}

//export accesskit_node_set_font_weight
func accesskit_node_set_font_weight(node C.uintptr_t, value C.double) {
	defer guard("accesskit_node_set_font_weight")
	ffi.Set(boundary, ref(node), tree.PropFontWeight, float64(value))
}

//export accesskit_node_clear_font_weight
func accesskit_node_clear_font_weight(node C.uintptr_t) {
	defer guard("accesskit_node_clear_font_weight")
	ffi.Clear(boundary, ref(node), tree.PropFontWeight)
}

//export accesskit_node_row_count
func accesskit_node_row_count(node C.uintptr_t) C.accesskit_opt_index {
	defer guard("accesskit_node_row_count")
	return optIndex(ffi.Get(boundary, ref(node), tree.PropRowCount))
}

//export accesskit_node_set_row_count
func accesskit_node_set_row_count(node C.uintptr_t, value C.size_t) {
	defer guard("accesskit_node_set_row_count")
	ffi.Set(boundary, ref(node), tree.PropRowCount, uint(value))
}

//export accesskit_node_clear_row_count
func accesskit_node_clear_row_count(node C.uintptr_t) {
	defer guard("accesskit_node_clear_row_count")
	ffi.Clear(boundary, ref(node), tree.PropRowCount)
}

//export accesskit_node_column_count
func accesskit_node_column_count(node C.uintptr_t) C.accesskit_opt_index {
	defer guard("accesskit_node_column_count")
	return optIndex(ffi.Get(boundary, ref(node), tree.PropColumnCount))
}

//export accesskit_node_set_column_count
func accesskit_node_set_column_count(node C.uintptr_t, value C.size_t) {
	defer guard("accesskit_node_set_column_count")
	ffi.Set(boundary, ref(node), tree.PropColumnCount, uint(value))
}

//export accesskit_node_clear_column_count
func accesskit_node_clear_column_count(node C.uintptr_t) {
	defer guard("accesskit_node_clear_column_count")
	ffi.Clear(boundary, ref(node), tree.PropColumnCount)
}

//export accesskit_node_row_index
func accesskit_node_row_index(node C.uintptr_t) C.accesskit_opt_index {
	defer guard("accesskit_node_row_index")
	return optIndex(ffi.Get(boundary, ref(node), tree.PropRowIndex))
}

//export accesskit_node_set_row_index
func accesskit_node_set_row_index(node C.uintptr_t, value C.size_t) {
	defer guard("accesskit_node_set_row_index")
	ffi.Set(boundary, ref(node), tree.PropRowIndex, uint(value))
}

//export accesskit_node_clear_row_index
func accesskit_node_clear_row_index(node C.uintptr_t) {
	defer guard("accesskit_node_clear_row_index")
	ffi.Clear(boundary, ref(node), tree.PropRowIndex)
}

//export accesskit_node_column_index
func accesskit_node_column_index(node C.uintptr_t) C.accesskit_opt_index {
	defer guard("accesskit_node_column_index")
	return optIndex(ffi.Get(boundary, ref(node), tree.PropColumnIndex))
}

//export accesskit_node_set_column_index
func accesskit_node_set_column_index(node C.uintptr_t, value C.size_t) {
	defer guard("accesskit_node_set_column_index")
	ffi.Set(boundary, ref(node), tree.PropColumnIndex, uint(value))
}

//export accesskit_node_clear_column_index
func accesskit_node_clear_column_index(node C.uintptr_t) {
	defer guard("accesskit_node_clear_column_index")
	ffi.Clear(boundary, ref(node), tree.PropColumnIndex)
}

//export accesskit_node_row_span
func accesskit_node_row_span(node C.uintptr_t) C.accesskit_opt_index {
	defer guard("accesskit_node_row_span")
	return optIndex(ffi.Get(boundary, ref(node), tree.PropRowSpan))
}

//export accesskit_node_set_row_span
func accesskit_node_set_row_span(node C.uintptr_t, value C.size_t) {
	defer guard("accesskit_node_set_row_span")
	ffi.Set(boundary, ref(node), tree.PropRowSpan, uint(value))
}

//export accesskit_node_clear_row_span
func accesskit_node_clear_row_span(node C.uintptr_t) {
	defer guard("accesskit_node_clear_row_span")
	ffi.Clear(boundary, ref(node), tree.PropRowSpan)
}

//export accesskit_node_column_span
func accesskit_node_column_span(node C.uintptr_t) C.accesskit_opt_index {
	defer guard("accesskit_node_column_span")
	return optIndex(ffi.Get(boundary, ref(node), tree.PropColumnSpan))
}

//export accesskit_node_set_column_span
func accesskit_node_set_column_span(node C.uintptr_t, value C.size_t) {
	defer guard("accesskit_node_set_column_span")
	ffi.Set(boundary, ref(node), tree.PropColumnSpan, uint(value))
}

//export accesskit_node_clear_column_span
func accesskit_node_clear_column_span(node C.uintptr_t) {
	defer guard("accesskit_node_clear_column_span")
	ffi.Clear(boundary, ref(node), tree.PropColumnSpan)
}

//export accesskit_node_level
func accesskit_node_level(node C.uintptr_t) C.accesskit_opt_index {
	defer guard("accesskit_node_level")
	return optIndex(ffi.Get(boundary, ref(node), tree.PropLevel))
}

//export accesskit_node_set_level
func accesskit_node_set_level(node C.uintptr_t, value C.size_t) {
	defer guard("accesskit_node_set_level")
	ffi.Set(boundary, ref(node), tree.PropLevel, uint(value))
}

//export accesskit_node_clear_level
func accesskit_node_clear_level(node C.uintptr_t) {
	defer guard("accesskit_node_clear_level")
	ffi.Clear(boundary, ref(node), tree.PropLevel)
}

//export accesskit_node_size_of_set
func accesskit_node_size_of_set(node C.uintptr_t) C.accesskit_opt_index {
	defer guard("accesskit_node_size_of_set")
	return optIndex(ffi.Get(boundary, ref(node), tree.PropSizeOfSet))
}

//export accesskit_node_set_size_of_set
func accesskit_node_set_size_of_set(node C.uintptr_t, value C.size_t) {
	defer guard("accesskit_node_set_size_of_set")
	ffi.Set(boundary, ref(node), tree.PropSizeOfSet, uint(value))
}

//export accesskit_node_clear_size_of_set
func accesskit_node_clear_size_of_set(node C.uintptr_t) {
	defer guard("accesskit_node_clear_size_of_set")
	ffi.Clear(boundary, ref(node), tree.PropSizeOfSet)
}

//export accesskit_node_position_in_set
func accesskit_node_position_in_set(node C.uintptr_t) C.accesskit_opt_index {
	defer guard("accesskit_node_position_in_set")
	return optIndex(ffi.Get(boundary, ref(node), tree.PropPositionInSet))
}

//export accesskit_node_set_position_in_set
func accesskit_node_set_position_in_set(node C.uintptr_t, value C.size_t) {
	defer guard("accesskit_node_set_position_in_set")
	ffi.Set(boundary, ref(node), tree.PropPositionInSet, uint(value))
}

//export accesskit_node_clear_position_in_set
func accesskit_node_clear_position_in_set(node C.uintptr_t) {
	defer guard("accesskit_node_clear_position_in_set")
	ffi.Clear(boundary, ref(node), tree.PropPositionInSet)
}

//export accesskit_node_color_value
func accesskit_node_color_value(node C.uintptr_t) C.accesskit_opt_color {
	defer guard("accesskit_node_color_value")
	return optColor(ffi.Get(boundary, ref(node), tree.PropColorValue))
}

//export accesskit_node_set_color_value
func accesskit_node_set_color_value(node C.uintptr_t, value C.uint32_t) {
	defer guard("accesskit_node_set_color_value")
	ffi.Set(boundary, ref(node), tree.PropColorValue, uint32(value))
}

//export accesskit_node_clear_color_value
func accesskit_node_clear_color_value(node C.uintptr_t) {
	defer guard("accesskit_node_clear_color_value")
	ffi.Clear(boundary, ref(node), tree.PropColorValue)
}

//export accesskit_node_background_color
func accesskit_node_background_color(node C.uintptr_t) C.accesskit_opt_color {
	defer guard("accesskit_node_background_color")
	return optColor(ffi.Get(boundary, ref(node), tree.PropBackgroundColor))
}

//export accesskit_node_set_background_color
func accesskit_node_set_background_color(node C.uintptr_t, value C.uint32_t) {
	defer guard("accesskit_node_set_background_color")
	ffi.Set(boundary, ref(node), tree.PropBackgroundColor, uint32(value))
}

//export accesskit_node_clear_background_color
func accesskit_node_clear_background_color(node C.uintptr_t) {
	defer guard("accesskit_node_clear_background_color")
	ffi.Clear(boundary, ref(node), tree.PropBackgroundColor)
}

//export accesskit_node_foreground_color
func accesskit_node_foreground_color(node C.uintptr_t) C.accesskit_opt_color {
	defer guard("accesskit_node_foreground_color")
	return optColor(ffi.Get(boundary, ref(node), tree.PropForegroundColor))
}

//export accesskit_node_set_foreground_color
func accesskit_node_set_foreground_color(node C.uintptr_t, value C.uint32_t) {
	defer guard("accesskit_node_set_foreground_color")
	ffi.Set(boundary, ref(node), tree.PropForegroundColor, uint32(value))
}

//export accesskit_node_clear_foreground_color
func accesskit_node_clear_foreground_color(node C.uintptr_t) {
	defer guard("accesskit_node_clear_foreground_color")
	ffi.Clear(boundary, ref(node), tree.PropForegroundColor)
}

//export accesskit_node_overline
func accesskit_node_overline(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_overline")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropOverline))
}

//export accesskit_node_set_overline
func accesskit_node_set_overline(node C.uintptr_t, value C.accesskit_text_decoration) {
	defer guard("accesskit_node_set_overline")
	ffi.SetEnum(boundary, ref(node), tree.PropOverline, tree.TextDecoration(value))
}

//export accesskit_node_clear_overline
func accesskit_node_clear_overline(node C.uintptr_t) {
	defer guard("accesskit_node_clear_overline")
	ffi.Clear(boundary, ref(node), tree.PropOverline)
}

//export accesskit_node_strikethrough
func accesskit_node_strikethrough(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_strikethrough")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropStrikethrough))
}

//export accesskit_node_set_strikethrough
func accesskit_node_set_strikethrough(node C.uintptr_t, value C.accesskit_text_decoration) {
	defer guard("accesskit_node_set_strikethrough")
	ffi.SetEnum(boundary, ref(node), tree.PropStrikethrough, tree.TextDecoration(value))
}

//export accesskit_node_clear_strikethrough
func accesskit_node_clear_strikethrough(node C.uintptr_t) {
	defer guard("accesskit_node_clear_strikethrough")
	ffi.Clear(boundary, ref(node), tree.PropStrikethrough)
}

//export accesskit_node_underline
func accesskit_node_underline(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_underline")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropUnderline))
}

//export accesskit_node_set_underline
func accesskit_node_set_underline(node C.uintptr_t, value C.accesskit_text_decoration) {
	defer guard("accesskit_node_set_underline")
	ffi.SetEnum(boundary, ref(node), tree.PropUnderline, tree.TextDecoration(value))
}

//export accesskit_node_clear_underline
func accesskit_node_clear_underline(node C.uintptr_t) {
	defer guard("accesskit_node_clear_underline")
	ffi.Clear(boundary, ref(node), tree.PropUnderline)
}

//export accesskit_node_character_lengths
func accesskit_node_character_lengths(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_character_lengths")
	return C.uintptr_t(ffi.GetLengths(boundary, ref(node), tree.PropCharacterLengths))
}

//export accesskit_node_set_character_lengths
func accesskit_node_set_character_lengths(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_character_lengths")
	ffi.SetLengths(boundary, ref(node), tree.PropCharacterLengths, uintptr(length), addr(values))
}

//export accesskit_node_clear_character_lengths
func accesskit_node_clear_character_lengths(node C.uintptr_t) {
	defer guard("accesskit_node_clear_character_lengths")
	ffi.Clear(boundary, ref(node), tree.PropCharacterLengths)
}

//export accesskit_node_word_lengths
func accesskit_node_word_lengths(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_word_lengths")
	return C.uintptr_t(ffi.GetLengths(boundary, ref(node), tree.PropWordLengths))
}

//export accesskit_node_set_word_lengths
func accesskit_node_set_word_lengths(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_word_lengths")
	ffi.SetLengths(boundary, ref(node), tree.PropWordLengths, uintptr(length), addr(values))
}

//export accesskit_node_clear_word_lengths
func accesskit_node_clear_word_lengths(node C.uintptr_t) {
	defer guard("accesskit_node_clear_word_lengths")
	ffi.Clear(boundary, ref(node), tree.PropWordLengths)
}

//export accesskit_node_character_positions
func accesskit_node_character_positions(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_character_positions")
	return C.uintptr_t(ffi.GetCoords(boundary, ref(node), tree.PropCharacterPositions))
}

//export accesskit_node_set_character_positions
func accesskit_node_set_character_positions(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_character_positions")
	ffi.SetCoords(boundary, ref(node), tree.PropCharacterPositions, uintptr(length), addr(values))
}

//export accesskit_node_clear_character_positions
func accesskit_node_clear_character_positions(node C.uintptr_t) {
	defer guard("accesskit_node_clear_character_positions")
	ffi.Clear(boundary, ref(node), tree.PropCharacterPositions)
}

//export accesskit_node_character_widths
func accesskit_node_character_widths(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_character_widths")
	return C.uintptr_t(ffi.GetCoords(boundary, ref(node), tree.PropCharacterWidths))
}

//export accesskit_node_set_character_widths
func accesskit_node_set_character_widths(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_character_widths")
	ffi.SetCoords(boundary, ref(node), tree.PropCharacterWidths, uintptr(length), addr(values))
}

//export accesskit_node_clear_character_widths
func accesskit_node_clear_character_widths(node C.uintptr_t) {
	defer guard("accesskit_node_clear_character_widths")
	ffi.Clear(boundary, ref(node), tree.PropCharacterWidths)
}

//export accesskit_node_is_expanded
func accesskit_node_is_expanded(node C.uintptr_t) C.accesskit_opt_bool {
	defer guard("accesskit_node_is_expanded")
	return optBool(ffi.Get(boundary, ref(node), tree.PropExpanded))
}

//export accesskit_node_set_expanded
func accesskit_node_set_expanded(node C.uintptr_t, value C.bool) {
	defer guard("accesskit_node_set_expanded")
	ffi.Set(boundary, ref(node), tree.PropExpanded, bool(value))
}

//export accesskit_node_clear_expanded
func accesskit_node_clear_expanded(node C.uintptr_t) {
	defer guard("accesskit_node_clear_expanded")
	ffi.Clear(boundary, ref(node), tree.PropExpanded)
}

//export accesskit_node_is_selected
func accesskit_node_is_selected(node C.uintptr_t) C.accesskit_opt_bool {
	defer guard("accesskit_node_is_selected")
	return optBool(ffi.Get(boundary, ref(node), tree.PropSelected))
}

//export accesskit_node_set_selected
func accesskit_node_set_selected(node C.uintptr_t, value C.bool) {
	defer guard("accesskit_node_set_selected")
	ffi.Set(boundary, ref(node), tree.PropSelected, bool(value))
}

//export accesskit_node_clear_selected
func accesskit_node_clear_selected(node C.uintptr_t) {
	defer guard("accesskit_node_clear_selected")
	ffi.Clear(boundary, ref(node), tree.PropSelected)
}

//export accesskit_node_invalid
func accesskit_node_invalid(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_invalid")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropInvalid))
}

//export accesskit_node_set_invalid
func accesskit_node_set_invalid(node C.uintptr_t, value C.accesskit_invalid) {
	defer guard("accesskit_node_set_invalid")
	ffi.SetEnum(boundary, ref(node), tree.PropInvalid, tree.Invalid(value))
}

//export accesskit_node_clear_invalid
func accesskit_node_clear_invalid(node C.uintptr_t) {
	defer guard("accesskit_node_clear_invalid")
	ffi.Clear(boundary, ref(node), tree.PropInvalid)
}

//export accesskit_node_toggled
func accesskit_node_toggled(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_toggled")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropToggled))
}

//export accesskit_node_set_toggled
func accesskit_node_set_toggled(node C.uintptr_t, value C.accesskit_toggled) {
	defer guard("accesskit_node_set_toggled")
	ffi.SetEnum(boundary, ref(node), tree.PropToggled, tree.Toggled(value))
}

//export accesskit_node_clear_toggled
func accesskit_node_clear_toggled(node C.uintptr_t) {
	defer guard("accesskit_node_clear_toggled")
	ffi.Clear(boundary, ref(node), tree.PropToggled)
}

//export accesskit_node_live
func accesskit_node_live(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_live")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropLive))
}

//export accesskit_node_set_live
func accesskit_node_set_live(node C.uintptr_t, value C.accesskit_live) {
	defer guard("accesskit_node_set_live")
	ffi.SetEnum(boundary, ref(node), tree.PropLive, tree.Live(value))
}

//export accesskit_node_clear_live
func accesskit_node_clear_live(node C.uintptr_t) {
	defer guard("accesskit_node_clear_live")
	ffi.Clear(boundary, ref(node), tree.PropLive)
}

//export accesskit_node_text_direction
func accesskit_node_text_direction(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_text_direction")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropTextDirection))
}

//export accesskit_node_set_text_direction
func accesskit_node_set_text_direction(node C.uintptr_t, value C.accesskit_text_direction) {
	defer guard("accesskit_node_set_text_direction")
	ffi.SetEnum(boundary, ref(node), tree.PropTextDirection, tree.TextDirection(value))
}

//export accesskit_node_clear_text_direction
func accesskit_node_clear_text_direction(node C.uintptr_t) {
	defer guard("accesskit_node_clear_text_direction")
	ffi.Clear(boundary, ref(node), tree.PropTextDirection)
}

//export accesskit_node_orientation
func accesskit_node_orientation(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_orientation")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropOrientation))
}

//export accesskit_node_set_orientation
func accesskit_node_set_orientation(node C.uintptr_t, value C.accesskit_orientation) {
	defer guard("accesskit_node_set_orientation")
	ffi.SetEnum(boundary, ref(node), tree.PropOrientation, tree.Orientation(value))
}

//export accesskit_node_clear_orientation
func accesskit_node_clear_orientation(node C.uintptr_t) {
	defer guard("accesskit_node_clear_orientation")
	ffi.Clear(boundary, ref(node), tree.PropOrientation)
}

//export accesskit_node_sort_direction
func accesskit_node_sort_direction(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_sort_direction")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropSortDirection))
}

//export accesskit_node_set_sort_direction
func accesskit_node_set_sort_direction(node C.uintptr_t, value C.accesskit_sort_direction) {
	defer guard("accesskit_node_set_sort_direction")
	ffi.SetEnum(boundary, ref(node), tree.PropSortDirection, tree.SortDirection(value))
}

//export accesskit_node_clear_sort_direction
func accesskit_node_clear_sort_direction(node C.uintptr_t) {
	defer guard("accesskit_node_clear_sort_direction")
	ffi.Clear(boundary, ref(node), tree.PropSortDirection)
}

//export accesskit_node_aria_current
func accesskit_node_aria_current(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_aria_current")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropAriaCurrent))
}

//export accesskit_node_set_aria_current
func accesskit_node_set_aria_current(node C.uintptr_t, value C.accesskit_aria_current) {
	defer guard("accesskit_node_set_aria_current")
	ffi.SetEnum(boundary, ref(node), tree.PropAriaCurrent, tree.AriaCurrent(value))
}

//export accesskit_node_clear_aria_current
func accesskit_node_clear_aria_current(node C.uintptr_t) {
	defer guard("accesskit_node_clear_aria_current")
	ffi.Clear(boundary, ref(node), tree.PropAriaCurrent)
}

//export accesskit_node_auto_complete
func accesskit_node_auto_complete(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_auto_complete")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropAutoComplete))
}

//export accesskit_node_set_auto_complete
func accesskit_node_set_auto_complete(node C.uintptr_t, value C.accesskit_auto_complete) {
	defer guard("accesskit_node_set_auto_complete")
	ffi.SetEnum(boundary, ref(node), tree.PropAutoComplete, tree.AutoComplete(value))
}

//export accesskit_node_clear_auto_complete
func accesskit_node_clear_auto_complete(node C.uintptr_t) {
	defer guard("accesskit_node_clear_auto_complete")
	ffi.Clear(boundary, ref(node), tree.PropAutoComplete)
}

//export accesskit_node_has_popup
func accesskit_node_has_popup(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_has_popup")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropHasPopup))
}

//export accesskit_node_set_has_popup
func accesskit_node_set_has_popup(node C.uintptr_t, value C.accesskit_has_popup) {
	defer guard("accesskit_node_set_has_popup")
	ffi.SetEnum(boundary, ref(node), tree.PropHasPopup, tree.HasPopup(value))
}

//export accesskit_node_clear_has_popup
func accesskit_node_clear_has_popup(node C.uintptr_t) {
	defer guard("accesskit_node_clear_has_popup")
	ffi.Clear(boundary, ref(node), tree.PropHasPopup)
}

//export accesskit_node_list_style
func accesskit_node_list_style(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_list_style")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropListStyle))
}

//export accesskit_node_set_list_style
func accesskit_node_set_list_style(node C.uintptr_t, value C.accesskit_list_style) {
	defer guard("accesskit_node_set_list_style")
	ffi.SetEnum(boundary, ref(node), tree.PropListStyle, tree.ListStyle(value))
}

//export accesskit_node_clear_list_style
func accesskit_node_clear_list_style(node C.uintptr_t) {
	defer guard("accesskit_node_clear_list_style")
	ffi.Clear(boundary, ref(node), tree.PropListStyle)
}

//export accesskit_node_text_align
func accesskit_node_text_align(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_text_align")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropTextAlign))
}

//export accesskit_node_set_text_align
func accesskit_node_set_text_align(node C.uintptr_t, value C.accesskit_text_align) {
	defer guard("accesskit_node_set_text_align")
	ffi.SetEnum(boundary, ref(node), tree.PropTextAlign, tree.TextAlign(value))
}

//export accesskit_node_clear_text_align
func accesskit_node_clear_text_align(node C.uintptr_t) {
	defer guard("accesskit_node_clear_text_align")
	ffi.Clear(boundary, ref(node), tree.PropTextAlign)
}

//export accesskit_node_vertical_offset
func accesskit_node_vertical_offset(node C.uintptr_t) C.accesskit_opt_enum {
	defer guard("accesskit_node_vertical_offset")
	return optEnum(ffi.Get(boundary, ref(node), tree.PropVerticalOffset))
}

//export accesskit_node_set_vertical_offset
func accesskit_node_set_vertical_offset(node C.uintptr_t, value C.accesskit_vertical_offset) {
	defer guard("accesskit_node_set_vertical_offset")
	ffi.SetEnum(boundary, ref(node), tree.PropVerticalOffset, tree.VerticalOffset(value))
}

//export accesskit_node_clear_vertical_offset
func accesskit_node_clear_vertical_offset(node C.uintptr_t) {
	defer guard("accesskit_node_clear_vertical_offset")
	ffi.Clear(boundary, ref(node), tree.PropVerticalOffset)
}

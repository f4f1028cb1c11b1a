package server

import (
	"github.com/HosakaKeigo/mcp-server-google-forms/pkg/batch"
)

// BatchUpdateFormInput is the input for the batch_update_form tool.
type BatchUpdateFormInput struct {
	FormID     string            `json:"form_id" jsonschema:"Google Forms form identifier"`
	Operations []batch.Operation `json:"operations" jsonschema:"ordered list of edit operations"`
}

// OperationOutcome reports an applied batch. The batch is
// all-or-nothing: Applied always equals the number of requested
// operations.
type OperationOutcome struct {
	FormID     string   `json:"form_id" jsonschema:"form identifier"`
	Applied    int      `json:"applied" jsonschema:"number of operations applied"`
	Operations []string `json:"operations" jsonschema:"per-operation descriptions in request order"`
	Summary    string   `json:"summary" jsonschema:"one-line confirmation"`
}

// GetFormInput is the input for the get_form tool.
type GetFormInput struct {
	FormID string `json:"form_id" jsonschema:"Google Forms form identifier"`
}

// FormItemSummary describes one item of a fetched form.
type FormItemSummary struct {
	Index       int    `json:"index" jsonschema:"0-based position"`
	Type        string `json:"type" jsonschema:"item kind"`
	Title       string `json:"title" jsonschema:"item title"`
	Description string `json:"description,omitempty" jsonschema:"item description"`
}

// GetFormResult is the output of the get_form tool.
type GetFormResult struct {
	FormID              string            `json:"form_id" jsonschema:"form identifier"`
	Title               string            `json:"title" jsonschema:"form title"`
	DocumentTitle       string            `json:"document_title,omitempty" jsonschema:"Drive file title"`
	Description         string            `json:"description,omitempty" jsonschema:"form description"`
	IsQuiz              bool              `json:"is_quiz" jsonschema:"whether the form is a quiz"`
	EmailCollectionType string            `json:"email_collection_type,omitempty" jsonschema:"email collection policy"`
	ResponderURI        string            `json:"responder_uri,omitempty" jsonschema:"URI responders use to fill out the form"`
	Items               []FormItemSummary `json:"items" jsonschema:"items in document order"`
}

// CreateFormInput is the input for the create_form tool.
type CreateFormInput struct {
	Title         string `json:"title" jsonschema:"form title"`
	DocumentTitle string `json:"document_title,omitempty" jsonschema:"Drive file title, when different from the form title"`
	Unpublished   bool   `json:"unpublished,omitempty" jsonschema:"create the form without accepting responses"`
}

// CreateFormResult is the output of the create_form tool.
type CreateFormResult struct {
	FormID       string `json:"form_id" jsonschema:"identifier of the created form"`
	Title        string `json:"title" jsonschema:"form title"`
	EditURI      string `json:"edit_uri" jsonschema:"editor URL for the created form"`
	ResponderURI string `json:"responder_uri,omitempty" jsonschema:"URI responders use to fill out the form"`
}

// AddTextItemInput is the input for the add_text_item tool.
type AddTextItemInput struct {
	FormID      string `json:"form_id" jsonschema:"Google Forms form identifier"`
	Title       string `json:"title" jsonschema:"item title"`
	Description string `json:"description,omitempty" jsonschema:"item description"`
	Index       *int64 `json:"index,omitempty" jsonschema:"0-based insertion position (defaults to end of form)"`
}

// AddPageBreakInput is the input for the add_page_break tool.
type AddPageBreakInput struct {
	FormID      string `json:"form_id" jsonschema:"Google Forms form identifier"`
	Title       string `json:"title" jsonschema:"section title"`
	Description string `json:"description,omitempty" jsonschema:"section description"`
	Index       *int64 `json:"index,omitempty" jsonschema:"0-based insertion position (defaults to end of form)"`
}

// AddQuestionItemInput is the input for the add_question_item tool.
type AddQuestionItemInput struct {
	FormID       string             `json:"form_id" jsonschema:"Google Forms form identifier"`
	Title        string             `json:"title" jsonschema:"question title"`
	Description  string             `json:"description,omitempty" jsonschema:"question description"`
	QuestionType batch.QuestionType `json:"question_type" jsonschema:"question subtype (TEXT, PARAGRAPH_TEXT, RADIO, CHECKBOX, DROP_DOWN)"`
	Required     bool               `json:"required,omitempty" jsonschema:"whether the question must be answered"`
	Options      []batch.OptionSpec `json:"options,omitempty" jsonschema:"choice options (required for RADIO, CHECKBOX, DROP_DOWN)"`
	IncludeOther bool               `json:"include_other,omitempty" jsonschema:"append an 'Other' option (RADIO and CHECKBOX only)"`
	Grading      *batch.GradingSpec `json:"grading,omitempty" jsonschema:"quiz grading configuration"`
	Index        *int64             `json:"index,omitempty" jsonschema:"0-based insertion position (defaults to end of form)"`
}

// AddQuestionGroupItemInput is the input for the
// add_question_group_item tool.
type AddQuestionGroupItemInput struct {
	FormID           string             `json:"form_id" jsonschema:"Google Forms form identifier"`
	Title            string             `json:"title" jsonschema:"group title"`
	Description      string             `json:"description,omitempty" jsonschema:"group description"`
	Rows             []batch.RowSpec    `json:"rows" jsonschema:"group rows (at least one)"`
	GridType         batch.QuestionType `json:"grid_type,omitempty" jsonschema:"grid selection type (RADIO or CHECKBOX)"`
	Columns          []batch.OptionSpec `json:"columns,omitempty" jsonschema:"grid columns"`
	ShuffleQuestions bool               `json:"shuffle_questions,omitempty" jsonschema:"shuffle grid rows per responder"`
	Index            *int64             `json:"index,omitempty" jsonschema:"0-based insertion position (defaults to end of form)"`
}

// UpdateItemInput is the input for the update_item tool.
type UpdateItemInput struct {
	FormID     string         `json:"form_id" jsonschema:"Google Forms form identifier"`
	Index      int64          `json:"index" jsonschema:"0-based position of the item to update"`
	Item       batch.ItemSpec `json:"item" jsonschema:"full desired post-update item state"`
	UpdateMask string         `json:"update_mask" jsonschema:"comma-separated field paths to apply"`
}

// DeleteItemInput is the input for the delete_item tool.
type DeleteItemInput struct {
	FormID string `json:"form_id" jsonschema:"Google Forms form identifier"`
	Index  int64  `json:"index" jsonschema:"0-based position of the item to delete"`
}

// MoveItemInput is the input for the move_item tool.
type MoveItemInput struct {
	FormID   string `json:"form_id" jsonschema:"Google Forms form identifier"`
	Index    int64  `json:"index" jsonschema:"0-based position of the item to move"`
	NewIndex int64  `json:"new_index" jsonschema:"0-based destination position (item count means move to end)"`
}

// UpdateFormInfoInput is the input for the update_form_info tool.
type UpdateFormInfoInput struct {
	FormID      string  `json:"form_id" jsonschema:"Google Forms form identifier"`
	Title       *string `json:"title,omitempty" jsonschema:"new form title"`
	Description *string `json:"description,omitempty" jsonschema:"new form description"`
}

// UpdateFormSettingsInput is the input for the update_form_settings
// tool.
type UpdateFormSettingsInput struct {
	FormID              string  `json:"form_id" jsonschema:"Google Forms form identifier"`
	EmailCollectionType *string `json:"email_collection_type,omitempty" jsonschema:"email collection policy (DO_NOT_COLLECT, VERIFIED, RESPONDER_INPUT)"`
	IsQuiz              *bool   `json:"is_quiz,omitempty" jsonschema:"whether the form is a quiz"`
	ReleaseGrade        *bool   `json:"release_grade,omitempty" jsonschema:"release grades immediately on submission (quiz mode only)"`
}

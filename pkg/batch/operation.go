// Package batch translates user-intended form edit operations into the
// wire requests expected by the Google Forms batchUpdate API.
//
// The package is split into four pieces:
//   - operation schemas: the closed, discriminated set of supported
//     operation kinds and their payload shapes (this file)
//   - request builders: one pure function per kind producing a
//     *forms.Request or a descriptive error (builder.go)
//   - the batch translator: ordering, bounds-checking and atomic
//     submission of one batch (translator.go)
//   - the result formatter: human-readable confirmation output
//     (formatter.go)
package batch

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// OpKind identifies one supported batch operation.
type OpKind string

const (
	OpCreateItem         OpKind = "create_item"
	OpUpdateItem         OpKind = "update_item"
	OpDeleteItem         OpKind = "delete_item"
	OpMoveItem           OpKind = "move_item"
	OpUpdateFormInfo     OpKind = "update_form_info"
	OpUpdateFormSettings OpKind = "update_form_settings"
)

// Kinds returns the supported operation kinds in a stable order.
// The list doubles as user-facing documentation of the batch surface.
func Kinds() []OpKind {
	return []OpKind{
		OpCreateItem,
		OpUpdateItem,
		OpDeleteItem,
		OpMoveItem,
		OpUpdateFormInfo,
		OpUpdateFormSettings,
	}
}

// Valid reports whether k is a supported operation kind.
func (k OpKind) Valid() bool {
	for _, kind := range Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// KindList returns a comma-separated list of supported kinds, for error
// messages and tool descriptions.
func KindList() string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// ItemType identifies the kind of a form item.
type ItemType string

const (
	ItemText          ItemType = "text"
	ItemQuestion      ItemType = "question"
	ItemPageBreak     ItemType = "pageBreak"
	ItemQuestionGroup ItemType = "questionGroup"
	ItemImage         ItemType = "image"
	ItemVideo         ItemType = "video"
)

// QuestionType identifies the subtype of a question item. Values match
// the Forms API choice type vocabulary where one exists.
type QuestionType string

const (
	QuestionShortText QuestionType = "TEXT"
	QuestionParagraph QuestionType = "PARAGRAPH_TEXT"
	QuestionRadio     QuestionType = "RADIO"
	QuestionCheckbox  QuestionType = "CHECKBOX"
	QuestionDropdown  QuestionType = "DROP_DOWN"
)

// IsChoice reports whether the question type carries an options list.
func (q QuestionType) IsChoice() bool {
	switch q {
	case QuestionRadio, QuestionCheckbox, QuestionDropdown:
		return true
	}
	return false
}

// Branching actions an option may trigger when selected.
const (
	GoToNextSection = "NEXT_SECTION"
	GoToRestartForm = "RESTART_FORM"
	GoToSubmitForm  = "SUBMIT_FORM"
)

// Email collection policies accepted by update_form_settings.
const (
	EmailDoNotCollect   = "DO_NOT_COLLECT"
	EmailVerified       = "VERIFIED"
	EmailResponderInput = "RESPONDER_INPUT"
)

// OptionSpec describes one choice option. At most one of GoToAction and
// GoToSectionID may be set; the builders reject payloads carrying both.
type OptionSpec struct {
	Value         string `json:"value" jsonschema:"option display value"`
	GoToAction    string `json:"go_to_action,omitempty" jsonschema:"branching action (NEXT_SECTION, RESTART_FORM, SUBMIT_FORM)"`
	GoToSectionID string `json:"go_to_section_id,omitempty" jsonschema:"identifier of the section to jump to"`
}

// RowSpec describes one row of a question group.
type RowSpec struct {
	Title    string `json:"title" jsonschema:"row title"`
	Required bool   `json:"required,omitempty" jsonschema:"whether the row must be answered"`
}

// GradingSpec describes quiz grading for a question.
type GradingSpec struct {
	PointValue     int64    `json:"point_value" jsonschema:"points awarded for a correct answer"`
	CorrectAnswers []string `json:"correct_answers,omitempty" jsonschema:"accepted answer values"`
	WhenRight      string   `json:"when_right,omitempty" jsonschema:"feedback shown for correct answers"`
	WhenWrong      string   `json:"when_wrong,omitempty" jsonschema:"feedback shown for incorrect answers"`
}

// QuestionSpec describes a single question item's question payload.
type QuestionSpec struct {
	Type         QuestionType `json:"question_type" jsonschema:"question subtype (TEXT, PARAGRAPH_TEXT, RADIO, CHECKBOX, DROP_DOWN)"`
	Required     bool         `json:"required,omitempty" jsonschema:"whether the question must be answered"`
	Options      []OptionSpec `json:"options,omitempty" jsonschema:"choice options (required for RADIO, CHECKBOX, DROP_DOWN)"`
	IncludeOther bool         `json:"include_other,omitempty" jsonschema:"append an 'Other' option (RADIO and CHECKBOX only)"`
	Grading      *GradingSpec `json:"grading,omitempty" jsonschema:"quiz grading configuration"`
}

// ImageSpec describes an image item.
type ImageSpec struct {
	SourceURI string `json:"source_uri" jsonschema:"publicly fetchable image URI"`
	AltText   string `json:"alt_text,omitempty" jsonschema:"image description for accessibility"`
}

// VideoSpec describes a video item.
type VideoSpec struct {
	YoutubeURI string `json:"youtube_uri" jsonschema:"YouTube video URI"`
	Caption    string `json:"caption,omitempty" jsonschema:"caption shown below the video"`
}

// ItemSpec is the tagged union describing one form item. Exactly the
// sub-payload matching Type is consulted; the builders reject specs
// whose sub-payload is missing.
type ItemSpec struct {
	Title       string   `json:"title" jsonschema:"item title"`
	Description string   `json:"description,omitempty" jsonschema:"item description"`
	Type        ItemType `json:"item_type" jsonschema:"item kind (text, question, pageBreak, questionGroup, image, video)"`

	Question *QuestionSpec `json:"question,omitempty" jsonschema:"question payload (item_type question)"`
	Image    *ImageSpec    `json:"image,omitempty" jsonschema:"image payload (item_type image)"`
	Video    *VideoSpec    `json:"video,omitempty" jsonschema:"video payload (item_type video)"`

	// Question group fields (item_type questionGroup). Grid fields are
	// all-or-nothing: setting any of is_grid, grid_type or columns
	// requires grid_type and columns to both be present.
	Rows             []RowSpec    `json:"rows,omitempty" jsonschema:"question group rows"`
	IsGrid           bool         `json:"is_grid,omitempty" jsonschema:"whether the group is a grid"`
	GridType         QuestionType `json:"grid_type,omitempty" jsonschema:"grid selection type (RADIO or CHECKBOX)"`
	Columns          []OptionSpec `json:"columns,omitempty" jsonschema:"grid columns"`
	ShuffleQuestions bool         `json:"shuffle_questions,omitempty" jsonschema:"shuffle grid rows per responder"`
}

// Validate checks the structural shape of the item spec. Semantic rules
// (option lists, grid completeness) live in the builders.
func (s ItemSpec) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Type, validation.Required, validation.In(
			ItemText, ItemQuestion, ItemPageBreak, ItemQuestionGroup, ItemImage, ItemVideo,
		)),
	)
}

// CreateItemPayload inserts a new item. Index defaults to the end of
// the form, resolved against the pre-batch snapshot length.
type CreateItemPayload struct {
	ItemSpec

	Index *int64 `json:"index,omitempty" jsonschema:"0-based insertion position (defaults to end of form)"`
}

// UpdateItemPayload replaces the masked fields of an existing item.
// Item carries the full desired post-update state; only the paths named
// in UpdateMask are applied.
type UpdateItemPayload struct {
	Index      int64    `json:"index" jsonschema:"0-based position of the item to update"`
	Item       ItemSpec `json:"item" jsonschema:"full desired post-update item state"`
	UpdateMask string   `json:"update_mask" jsonschema:"comma-separated field paths to apply (e.g. title,questionItem.question.required)"`
}

// DeleteItemPayload removes the item at Index.
type DeleteItemPayload struct {
	Index int64 `json:"index" jsonschema:"0-based position of the item to delete"`
}

// MoveItemPayload moves the item at Index to NewIndex. NewIndex may
// equal the item count, meaning "move to end".
type MoveItemPayload struct {
	Index    int64 `json:"index" jsonschema:"0-based position of the item to move"`
	NewIndex int64 `json:"new_index" jsonschema:"0-based destination position"`
}

// UpdateFormInfoPayload updates the form title and/or description.
// Nil fields are left untouched; at least one must be provided.
type UpdateFormInfoPayload struct {
	Title       *string `json:"title,omitempty" jsonschema:"new form title"`
	Description *string `json:"description,omitempty" jsonschema:"new form description"`
}

// UpdateFormSettingsPayload updates form-level settings. Nil fields are
// left untouched; at least one must be provided.
type UpdateFormSettingsPayload struct {
	EmailCollectionType *string `json:"email_collection_type,omitempty" jsonschema:"email collection policy (DO_NOT_COLLECT, VERIFIED, RESPONDER_INPUT)"`
	IsQuiz              *bool   `json:"is_quiz,omitempty" jsonschema:"whether the form is a quiz"`
	ReleaseGrade        *bool   `json:"release_grade,omitempty" jsonschema:"release grades immediately on submission (quiz mode only)"`
}

// Operation is the discriminated union over all supported batch
// operations. Kind selects the payload; exactly the payload matching
// Kind must be set.
type Operation struct {
	Kind OpKind `json:"op" jsonschema:"operation kind (create_item, update_item, delete_item, move_item, update_form_info, update_form_settings)"`

	CreateItem         *CreateItemPayload         `json:"create_item,omitempty" jsonschema:"payload for op create_item"`
	UpdateItem         *UpdateItemPayload         `json:"update_item,omitempty" jsonschema:"payload for op update_item"`
	DeleteItem         *DeleteItemPayload         `json:"delete_item,omitempty" jsonschema:"payload for op delete_item"`
	MoveItem           *MoveItemPayload           `json:"move_item,omitempty" jsonschema:"payload for op move_item"`
	UpdateFormInfo     *UpdateFormInfoPayload     `json:"update_form_info,omitempty" jsonschema:"payload for op update_form_info"`
	UpdateFormSettings *UpdateFormSettingsPayload `json:"update_form_settings,omitempty" jsonschema:"payload for op update_form_settings"`
}

// Validate checks that the operation carries a supported kind and
// exactly the payload that kind requires.
func (op Operation) Validate() error {
	if !op.Kind.Valid() {
		return fmt.Errorf("unsupported operation %q (supported: %s)", op.Kind, KindList())
	}

	set := op.setPayloads()
	if len(set) == 0 {
		return fmt.Errorf("missing %s payload", op.Kind)
	}
	if len(set) > 1 {
		return fmt.Errorf("operation %s carries multiple payloads (%s)", op.Kind, strings.Join(set, ", "))
	}
	if set[0] != string(op.Kind) {
		return fmt.Errorf("operation %s carries a %s payload", op.Kind, set[0])
	}
	return nil
}

func (op Operation) setPayloads() []string {
	var set []string
	if op.CreateItem != nil {
		set = append(set, string(OpCreateItem))
	}
	if op.UpdateItem != nil {
		set = append(set, string(OpUpdateItem))
	}
	if op.DeleteItem != nil {
		set = append(set, string(OpDeleteItem))
	}
	if op.MoveItem != nil {
		set = append(set, string(OpMoveItem))
	}
	if op.UpdateFormInfo != nil {
		set = append(set, string(OpUpdateFormInfo))
	}
	if op.UpdateFormSettings != nil {
		set = append(set, string(OpUpdateFormSettings))
	}
	return set
}

// Validate checks the structural shape of a create payload.
func (p CreateItemPayload) Validate() error {
	if err := p.ItemSpec.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&p,
		validation.Field(&p.Index, validation.Min(int64(0))),
	)
}

// Validate checks the structural shape of an update payload.
func (p UpdateItemPayload) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Index, validation.Min(int64(0))),
		validation.Field(&p.UpdateMask, validation.Required),
	); err != nil {
		return err
	}
	return p.Item.Validate()
}

// Validate checks the structural shape of a delete payload.
func (p DeleteItemPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Index, validation.Min(int64(0))),
	)
}

// Validate checks the structural shape of a move payload.
func (p MoveItemPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Index, validation.Min(int64(0))),
		validation.Field(&p.NewIndex, validation.Min(int64(0))),
	)
}

package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/googleapi"

	"github.com/HosakaKeigo/mcp-server-google-forms/pkg/batch"
)

type fakeAPI struct {
	form      *forms.Form
	getErr    error
	createErr error
	batchErr  error

	batchCalls  int
	lastRequest *forms.BatchUpdateFormRequest
	created     *forms.Form
}

func (f *fakeAPI) GetForm(_ context.Context, _ string) (*forms.Form, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.form, nil
}

func (f *fakeAPI) BatchUpdate(_ context.Context, _ string, req *forms.BatchUpdateFormRequest) (*forms.BatchUpdateFormResponse, error) {
	f.batchCalls++
	f.lastRequest = req
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	return &forms.BatchUpdateFormResponse{Form: f.form}, nil
}

func (f *fakeAPI) CreateForm(_ context.Context, title, documentTitle string, _ bool) (*forms.Form, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &forms.Form{
		FormId:       "created-form",
		Info:         &forms.Info{Title: title, DocumentTitle: documentTitle},
		ResponderUri: "https://docs.google.com/forms/d/e/created-form/viewform",
	}
	return f.created, nil
}

func sampleForm() *forms.Form {
	return &forms.Form{
		FormId:       "form-1",
		ResponderUri: "https://docs.google.com/forms/d/e/form-1/viewform",
		Info: &forms.Info{
			Title:         "Customer survey",
			DocumentTitle: "Survey 2026",
			Description:   "Tell us what you think",
		},
		Settings: &forms.FormSettings{
			EmailCollectionType: "VERIFIED",
			QuizSettings:        &forms.QuizSettings{IsQuiz: true},
		},
		Items: []*forms.Item{
			{Title: "Welcome", TextItem: &forms.TextItem{}},
			{
				Title: "Rating",
				QuestionItem: &forms.QuestionItem{
					Question: &forms.Question{
						ChoiceQuestion: &forms.ChoiceQuestion{Type: "RADIO"},
					},
				},
			},
		},
	}
}

func newTestServer(api *fakeAPI) *Server {
	return New(api, nil)
}

func TestToolNames(t *testing.T) {
	names := ToolNames()
	assert.Equal(t, []string{
		"batch_update_form",
		"get_form",
		"create_form",
		"add_text_item",
		"add_page_break",
		"add_question_item",
		"add_question_group_item",
		"update_item",
		"delete_item",
		"move_item",
		"update_form_info",
		"update_form_settings",
	}, names)
}

func TestGetFormHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("returns info, settings and item summaries", func(t *testing.T) {
		api := &fakeAPI{form: sampleForm()}
		handler := getFormHandler(api)

		_, result, err := handler(ctx, nil, GetFormInput{FormID: "form-1"})
		require.NoError(t, err)

		assert.Equal(t, "form-1", result.FormID)
		assert.Equal(t, "Customer survey", result.Title)
		assert.Equal(t, "Survey 2026", result.DocumentTitle)
		assert.True(t, result.IsQuiz)
		assert.Equal(t, "VERIFIED", result.EmailCollectionType)

		require.Len(t, result.Items, 2)
		assert.Equal(t, 0, result.Items[0].Index)
		assert.Equal(t, "text", result.Items[0].Type)
		assert.Equal(t, "question", result.Items[1].Type)
		assert.Equal(t, "Rating", result.Items[1].Title)
	})

	t.Run("missing form id", func(t *testing.T) {
		handler := getFormHandler(&fakeAPI{})
		_, _, err := handler(ctx, nil, GetFormInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "form_id is required")
	})

	t.Run("404 becomes a not-found message", func(t *testing.T) {
		api := &fakeAPI{getErr: &googleapi.Error{Code: 404, Message: "Requested entity was not found."}}
		handler := getFormHandler(api)
		_, _, err := handler(ctx, nil, GetFormInput{FormID: "missing"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `form "missing" not found`)
	})
}

func TestCreateFormHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and reports edit uri", func(t *testing.T) {
		api := &fakeAPI{}
		handler := createFormHandler(api)

		_, result, err := handler(ctx, nil, CreateFormInput{Title: "New survey", Unpublished: true})
		require.NoError(t, err)
		assert.Equal(t, "created-form", result.FormID)
		assert.Equal(t, "New survey", result.Title)
		assert.Equal(t, "https://docs.google.com/forms/d/created-form/edit", result.EditURI)
		require.NotNil(t, api.created)
	})

	t.Run("missing title", func(t *testing.T) {
		handler := createFormHandler(&fakeAPI{})
		_, _, err := handler(ctx, nil, CreateFormInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title is required")
	})
}

func TestBatchUpdateFormHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the batch and echoes each operation", func(t *testing.T) {
		api := &fakeAPI{form: sampleForm()}
		s := newTestServer(api)
		handler := batchUpdateFormHandler(s.translator)

		input := BatchUpdateFormInput{
			FormID: "form-1",
			Operations: []batch.Operation{
				{
					Kind: batch.OpCreateItem,
					CreateItem: &batch.CreateItemPayload{
						ItemSpec: batch.ItemSpec{Title: "Closing note", Type: batch.ItemText},
					},
				},
				{
					Kind:       batch.OpDeleteItem,
					DeleteItem: &batch.DeleteItemPayload{Index: 0},
				},
			},
		}
		_, out, err := handler(ctx, nil, input)
		require.NoError(t, err)

		assert.Equal(t, "form-1", out.FormID)
		assert.Equal(t, 2, out.Applied)
		require.Len(t, out.Operations, 2)
		assert.Contains(t, out.Operations[0], "create text item")
		assert.Contains(t, out.Operations[1], "delete item at index 0")
		assert.Contains(t, out.Summary, "Applied 2 operation(s)")
		assert.Equal(t, 1, api.batchCalls)
	})

	t.Run("invalid operation aborts without a write", func(t *testing.T) {
		api := &fakeAPI{form: sampleForm()}
		s := newTestServer(api)
		handler := batchUpdateFormHandler(s.translator)

		input := BatchUpdateFormInput{
			FormID: "form-1",
			Operations: []batch.Operation{
				{Kind: batch.OpDeleteItem, DeleteItem: &batch.DeleteItemPayload{Index: 10}},
			},
		}
		_, _, err := handler(ctx, nil, input)
		require.Error(t, err)

		var opErr *batch.OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, 0, api.batchCalls)
	})
}

func TestSingleOperationHandlers(t *testing.T) {
	ctx := context.Background()

	t.Run("add_question_item submits one create request", func(t *testing.T) {
		api := &fakeAPI{form: sampleForm()}
		s := newTestServer(api)
		handler := addQuestionItemHandler(s.translator)

		_, out, err := handler(ctx, nil, AddQuestionItemInput{
			FormID:       "form-1",
			Title:        "Favorite color",
			QuestionType: batch.QuestionRadio,
			Options: []batch.OptionSpec{
				{Value: "Red"},
				{Value: "Blue"},
			},
			IncludeOther: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Applied)

		require.Len(t, api.lastRequest.Requests, 1)
		created := api.lastRequest.Requests[0].CreateItem
		require.NotNil(t, created)
		choice := created.Item.QuestionItem.Question.ChoiceQuestion
		require.NotNil(t, choice)
		require.Len(t, choice.Options, 3)
		assert.True(t, choice.Options[2].IsOther)
		// No explicit index: appended after the 2 existing items.
		assert.Equal(t, int64(2), created.Location.Index)
	})

	t.Run("move_item submits one move request", func(t *testing.T) {
		api := &fakeAPI{form: sampleForm()}
		s := newTestServer(api)
		handler := moveItemHandler(s.translator)

		_, out, err := handler(ctx, nil, MoveItemInput{FormID: "form-1", Index: 0, NewIndex: 2})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Applied)

		require.Len(t, api.lastRequest.Requests, 1)
		move := api.lastRequest.Requests[0].MoveItem
		require.NotNil(t, move)
		assert.Equal(t, int64(0), move.OriginalLocation.Index)
		assert.Equal(t, int64(2), move.NewLocation.Index)
	})

	t.Run("update_form_settings builds the settings mask", func(t *testing.T) {
		api := &fakeAPI{form: sampleForm()}
		s := newTestServer(api)
		handler := updateFormSettingsHandler(s.translator)

		isQuiz := true
		_, _, err := handler(ctx, nil, UpdateFormSettingsInput{
			FormID: "form-1",
			IsQuiz: &isQuiz,
		})
		require.NoError(t, err)

		require.Len(t, api.lastRequest.Requests, 1)
		settings := api.lastRequest.Requests[0].UpdateSettings
		require.NotNil(t, settings)
		assert.Equal(t, "quizSettings.isQuiz", settings.UpdateMask)
		assert.True(t, settings.Settings.QuizSettings.IsQuiz)
	})

	t.Run("remote failure is surfaced", func(t *testing.T) {
		api := &fakeAPI{form: sampleForm(), batchErr: errors.New("quota exceeded")}
		s := newTestServer(api)
		handler := deleteItemHandler(s.translator)

		_, _, err := handler(ctx, nil, DeleteItemInput{FormID: "form-1", Index: 0})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}

package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/forms/v1"

	"github.com/HosakaKeigo/mcp-server-google-forms/pkg/batch"
	"github.com/HosakaKeigo/mcp-server-google-forms/pkg/gforms"
)

// FormsAPI is the collaborator contract the tool handlers need.
// *gforms.Service satisfies it; tests substitute a fake.
type FormsAPI interface {
	batch.Client
	CreateForm(ctx context.Context, title, documentTitle string, unpublished bool) (*forms.Form, error)
}

// outcome assembles the shared confirmation shape from an applied
// batch.
func outcome(formID string, ops []batch.Operation, res *batch.Result) OperationOutcome {
	return OperationOutcome{
		FormID:     formID,
		Applied:    res.Applied,
		Operations: batch.Describe(ops),
		Summary:    batch.Summary(res.Applied, res.Form),
	}
}

// executeOne runs a single operation through the translator. The
// per-operation convenience tools are call-throughs to the same
// translation logic the batch tool uses.
func executeOne(ctx context.Context, translator *batch.Translator, formID string, op batch.Operation) (OperationOutcome, error) {
	ops := []batch.Operation{op}
	res, err := translator.Execute(ctx, formID, ops)
	if err != nil {
		return OperationOutcome{}, err
	}
	return outcome(formID, ops, res), nil
}

func batchUpdateFormHandler(translator *batch.Translator) mcp.ToolHandlerFor[BatchUpdateFormInput, OperationOutcome] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BatchUpdateFormInput) (*mcp.CallToolResult, OperationOutcome, error) {
		res, err := translator.Execute(ctx, input.FormID, input.Operations)
		if err != nil {
			return nil, OperationOutcome{}, err
		}
		return nil, outcome(input.FormID, input.Operations, res), nil
	}
}

func getFormHandler(api FormsAPI) mcp.ToolHandlerFor[GetFormInput, GetFormResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetFormInput) (*mcp.CallToolResult, GetFormResult, error) {
		if input.FormID == "" {
			return nil, GetFormResult{}, fmt.Errorf("form_id is required")
		}
		form, err := api.GetForm(ctx, input.FormID)
		if err != nil {
			if gforms.IsNotFound(err) {
				return nil, GetFormResult{}, fmt.Errorf("form %q not found", input.FormID)
			}
			return nil, GetFormResult{}, err
		}

		result := GetFormResult{
			FormID:       form.FormId,
			ResponderURI: form.ResponderUri,
			Items:        make([]FormItemSummary, 0, len(form.Items)),
		}
		if form.Info != nil {
			result.Title = form.Info.Title
			result.DocumentTitle = form.Info.DocumentTitle
			result.Description = form.Info.Description
		}
		if form.Settings != nil {
			result.EmailCollectionType = form.Settings.EmailCollectionType
			if form.Settings.QuizSettings != nil {
				result.IsQuiz = form.Settings.QuizSettings.IsQuiz
			}
		}
		for i, item := range form.Items {
			kind, err := batch.ItemKind(item)
			if err != nil {
				kind = "unknown"
			}
			result.Items = append(result.Items, FormItemSummary{
				Index:       i,
				Type:        string(kind),
				Title:       item.Title,
				Description: item.Description,
			})
		}
		return nil, result, nil
	}
}

func createFormHandler(api FormsAPI) mcp.ToolHandlerFor[CreateFormInput, CreateFormResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateFormInput) (*mcp.CallToolResult, CreateFormResult, error) {
		if input.Title == "" {
			return nil, CreateFormResult{}, fmt.Errorf("title is required")
		}
		form, err := api.CreateForm(ctx, input.Title, input.DocumentTitle, input.Unpublished)
		if err != nil {
			return nil, CreateFormResult{}, err
		}
		result := CreateFormResult{
			FormID:       form.FormId,
			EditURI:      fmt.Sprintf("https://docs.google.com/forms/d/%s/edit", form.FormId),
			ResponderURI: form.ResponderUri,
		}
		if form.Info != nil {
			result.Title = form.Info.Title
		}
		return nil, result, nil
	}
}

func addTextItemHandler(translator *batch.Translator) mcp.ToolHandlerFor[AddTextItemInput, OperationOutcome] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddTextItemInput) (*mcp.CallToolResult, OperationOutcome, error) {
		out, err := executeOne(ctx, translator, input.FormID, batch.Operation{
			Kind: batch.OpCreateItem,
			CreateItem: &batch.CreateItemPayload{
				ItemSpec: batch.ItemSpec{
					Title:       input.Title,
					Description: input.Description,
					Type:        batch.ItemText,
				},
				Index: input.Index,
			},
		})
		return nil, out, err
	}
}

func addPageBreakHandler(translator *batch.Translator) mcp.ToolHandlerFor[AddPageBreakInput, OperationOutcome] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddPageBreakInput) (*mcp.CallToolResult, OperationOutcome, error) {
		out, err := executeOne(ctx, translator, input.FormID, batch.Operation{
			Kind: batch.OpCreateItem,
			CreateItem: &batch.CreateItemPayload{
				ItemSpec: batch.ItemSpec{
					Title:       input.Title,
					Description: input.Description,
					Type:        batch.ItemPageBreak,
				},
				Index: input.Index,
			},
		})
		return nil, out, err
	}
}

func addQuestionItemHandler(translator *batch.Translator) mcp.ToolHandlerFor[AddQuestionItemInput, OperationOutcome] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddQuestionItemInput) (*mcp.CallToolResult, OperationOutcome, error) {
		out, err := executeOne(ctx, translator, input.FormID, batch.Operation{
			Kind: batch.OpCreateItem,
			CreateItem: &batch.CreateItemPayload{
				ItemSpec: batch.ItemSpec{
					Title:       input.Title,
					Description: input.Description,
					Type:        batch.ItemQuestion,
					Question: &batch.QuestionSpec{
						Type:         input.QuestionType,
						Required:     input.Required,
						Options:      input.Options,
						IncludeOther: input.IncludeOther,
						Grading:      input.Grading,
					},
				},
				Index: input.Index,
			},
		})
		return nil, out, err
	}
}

func addQuestionGroupItemHandler(translator *batch.Translator) mcp.ToolHandlerFor[AddQuestionGroupItemInput, OperationOutcome] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddQuestionGroupItemInput) (*mcp.CallToolResult, OperationOutcome, error) {
		out, err := executeOne(ctx, translator, input.FormID, batch.Operation{
			Kind: batch.OpCreateItem,
			CreateItem: &batch.CreateItemPayload{
				ItemSpec: batch.ItemSpec{
					Title:            input.Title,
					Description:      input.Description,
					Type:             batch.ItemQuestionGroup,
					Rows:             input.Rows,
					GridType:         input.GridType,
					Columns:          input.Columns,
					ShuffleQuestions: input.ShuffleQuestions,
				},
				Index: input.Index,
			},
		})
		return nil, out, err
	}
}

func updateItemHandler(translator *batch.Translator) mcp.ToolHandlerFor[UpdateItemInput, OperationOutcome] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateItemInput) (*mcp.CallToolResult, OperationOutcome, error) {
		out, err := executeOne(ctx, translator, input.FormID, batch.Operation{
			Kind: batch.OpUpdateItem,
			UpdateItem: &batch.UpdateItemPayload{
				Index:      input.Index,
				Item:       input.Item,
				UpdateMask: input.UpdateMask,
			},
		})
		return nil, out, err
	}
}

func deleteItemHandler(translator *batch.Translator) mcp.ToolHandlerFor[DeleteItemInput, OperationOutcome] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteItemInput) (*mcp.CallToolResult, OperationOutcome, error) {
		out, err := executeOne(ctx, translator, input.FormID, batch.Operation{
			Kind:       batch.OpDeleteItem,
			DeleteItem: &batch.DeleteItemPayload{Index: input.Index},
		})
		return nil, out, err
	}
}

func moveItemHandler(translator *batch.Translator) mcp.ToolHandlerFor[MoveItemInput, OperationOutcome] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MoveItemInput) (*mcp.CallToolResult, OperationOutcome, error) {
		out, err := executeOne(ctx, translator, input.FormID, batch.Operation{
			Kind:     batch.OpMoveItem,
			MoveItem: &batch.MoveItemPayload{Index: input.Index, NewIndex: input.NewIndex},
		})
		return nil, out, err
	}
}

func updateFormInfoHandler(translator *batch.Translator) mcp.ToolHandlerFor[UpdateFormInfoInput, OperationOutcome] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateFormInfoInput) (*mcp.CallToolResult, OperationOutcome, error) {
		out, err := executeOne(ctx, translator, input.FormID, batch.Operation{
			Kind: batch.OpUpdateFormInfo,
			UpdateFormInfo: &batch.UpdateFormInfoPayload{
				Title:       input.Title,
				Description: input.Description,
			},
		})
		return nil, out, err
	}
}

func updateFormSettingsHandler(translator *batch.Translator) mcp.ToolHandlerFor[UpdateFormSettingsInput, OperationOutcome] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateFormSettingsInput) (*mcp.CallToolResult, OperationOutcome, error) {
		out, err := executeOne(ctx, translator, input.FormID, batch.Operation{
			Kind: batch.OpUpdateFormSettings,
			UpdateFormSettings: &batch.UpdateFormSettingsPayload{
				EmailCollectionType: input.EmailCollectionType,
				IsQuiz:              input.IsQuiz,
				ReleaseGrade:        input.ReleaseGrade,
			},
		})
		return nil, out, err
	}
}

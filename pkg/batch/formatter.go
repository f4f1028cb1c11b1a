package batch

import (
	"fmt"
	"strings"

	"google.golang.org/api/forms/v1"
)

// Describe renders one human-readable line per requested operation, in
// the caller's original order. The batch is all-or-nothing, so by the
// time formatting runs the requested operations are the applied ones.
func Describe(ops []Operation) []string {
	lines := make([]string, len(ops))
	for i, op := range ops {
		lines[i] = describeOperation(op)
	}
	return lines
}

// Summary renders a one-line confirmation for an applied batch.
func Summary(applied int, form *forms.Form) string {
	title := ""
	if form != nil && form.Info != nil {
		title = form.Info.Title
	}
	items := 0
	if form != nil {
		items = len(form.Items)
	}
	return fmt.Sprintf("Applied %d operation(s); form %q now has %d item(s)", applied, title, items)
}

func describeOperation(op Operation) string {
	switch op.Kind {
	case OpCreateItem:
		if p := op.CreateItem; p != nil {
			position := "at end of form"
			if p.Index != nil {
				position = fmt.Sprintf("at index %d", *p.Index)
			}
			return fmt.Sprintf("create %s item %q %s", p.Type, p.Title, position)
		}
	case OpUpdateItem:
		if p := op.UpdateItem; p != nil {
			return fmt.Sprintf("update item at index %d (fields: %s)", p.Index, p.UpdateMask)
		}
	case OpDeleteItem:
		if p := op.DeleteItem; p != nil {
			return fmt.Sprintf("delete item at index %d", p.Index)
		}
	case OpMoveItem:
		if p := op.MoveItem; p != nil {
			return fmt.Sprintf("move item from index %d to index %d", p.Index, p.NewIndex)
		}
	case OpUpdateFormInfo:
		if p := op.UpdateFormInfo; p != nil {
			var fields []string
			if p.Title != nil {
				fields = append(fields, fmt.Sprintf("title=%q", *p.Title))
			}
			if p.Description != nil {
				fields = append(fields, "description")
			}
			return fmt.Sprintf("update form info (%s)", strings.Join(fields, ", "))
		}
	case OpUpdateFormSettings:
		if p := op.UpdateFormSettings; p != nil {
			var fields []string
			if p.EmailCollectionType != nil {
				fields = append(fields, fmt.Sprintf("email_collection_type=%s", *p.EmailCollectionType))
			}
			if p.IsQuiz != nil {
				fields = append(fields, fmt.Sprintf("is_quiz=%t", *p.IsQuiz))
			}
			if p.ReleaseGrade != nil {
				fields = append(fields, fmt.Sprintf("release_grade=%t", *p.ReleaseGrade))
			}
			return fmt.Sprintf("update form settings (%s)", strings.Join(fields, ", "))
		}
	}
	return fmt.Sprintf("%s (no payload)", op.Kind)
}

package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpKindValid(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, k.Valid(), "kind %s", k)
	}
	assert.False(t, OpKind("").Valid())
	assert.False(t, OpKind("createItem").Valid())
	assert.False(t, OpKind("publish_form").Valid())
}

func TestKindList(t *testing.T) {
	assert.Equal(t,
		"create_item, update_item, delete_item, move_item, update_form_info, update_form_settings",
		KindList())
}

func TestQuestionTypeIsChoice(t *testing.T) {
	assert.True(t, QuestionRadio.IsChoice())
	assert.True(t, QuestionCheckbox.IsChoice())
	assert.True(t, QuestionDropdown.IsChoice())
	assert.False(t, QuestionShortText.IsChoice())
	assert.False(t, QuestionParagraph.IsChoice())
	assert.False(t, QuestionType("SCALE").IsChoice())
}

func TestOperationValidate(t *testing.T) {
	t.Run("kind with matching payload passes", func(t *testing.T) {
		op := Operation{
			Kind:       OpDeleteItem,
			DeleteItem: &DeleteItemPayload{Index: 0},
		}
		assert.NoError(t, op.Validate())
	})

	t.Run("unsupported kind is rejected", func(t *testing.T) {
		op := Operation{Kind: "rename_form"}
		err := op.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported operation")
		assert.Contains(t, err.Error(), "create_item")
	})

	t.Run("missing payload is rejected", func(t *testing.T) {
		op := Operation{Kind: OpMoveItem}
		err := op.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing move_item payload")
	})

	t.Run("multiple payloads are rejected", func(t *testing.T) {
		op := Operation{
			Kind:       OpDeleteItem,
			DeleteItem: &DeleteItemPayload{Index: 0},
			MoveItem:   &MoveItemPayload{Index: 0, NewIndex: 1},
		}
		err := op.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "multiple payloads")
	})

	t.Run("payload for a different kind is rejected", func(t *testing.T) {
		op := Operation{
			Kind:     OpDeleteItem,
			MoveItem: &MoveItemPayload{Index: 0, NewIndex: 1},
		}
		err := op.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "carries a move_item payload")
	})
}

func TestItemSpecValidate(t *testing.T) {
	t.Run("title and known type pass", func(t *testing.T) {
		spec := ItemSpec{Title: "Section", Type: ItemPageBreak}
		assert.NoError(t, spec.Validate())
	})

	t.Run("missing title fails", func(t *testing.T) {
		spec := ItemSpec{Type: ItemText}
		assert.Error(t, spec.Validate())
	})

	t.Run("unknown item type fails", func(t *testing.T) {
		spec := ItemSpec{Title: "x", Type: ItemType("fileUpload")}
		assert.Error(t, spec.Validate())
	})
}

func TestPayloadValidate(t *testing.T) {
	t.Run("update requires a mask", func(t *testing.T) {
		p := UpdateItemPayload{
			Index: 0,
			Item:  ItemSpec{Title: "x", Type: ItemText},
		}
		assert.Error(t, p.Validate())

		p.UpdateMask = "title"
		assert.NoError(t, p.Validate())
	})

	t.Run("negative indexes fail structurally", func(t *testing.T) {
		assert.Error(t, DeleteItemPayload{Index: -1}.Validate())
		assert.Error(t, MoveItemPayload{Index: -1, NewIndex: 0}.Validate())
		assert.Error(t, MoveItemPayload{Index: 0, NewIndex: -2}.Validate())

		neg := int64(-1)
		p := CreateItemPayload{
			ItemSpec: ItemSpec{Title: "x", Type: ItemText},
			Index:    &neg,
		}
		assert.Error(t, p.Validate())
	})
}

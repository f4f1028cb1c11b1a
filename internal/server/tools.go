package server

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HosakaKeigo/mcp-server-google-forms/pkg/batch"
)

func batchUpdateFormTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "batch_update_form",
		Description: fmt.Sprintf(
			"Applies an ordered list of edit operations to a form as one atomic batch. Supported operations: %s",
			batch.KindList(),
		),
	}
}

func getFormTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_form",
		Description: "Fetches a form's info, settings and items",
	}
}

func createFormTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_form",
		Description: "Creates a new form with the given title",
	}
}

func addTextItemTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_text_item",
		Description: "Adds a text (static display) item to a form",
	}
}

func addPageBreakTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_page_break",
		Description: "Adds a page break (new section) to a form",
	}
}

func addQuestionItemTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_question_item",
		Description: "Adds a question item (TEXT, PARAGRAPH_TEXT, RADIO, CHECKBOX, DROP_DOWN) to a form",
	}
}

func addQuestionGroupItemTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_question_group_item",
		Description: "Adds a question group (optionally a grid) to a form",
	}
}

func updateItemTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_item",
		Description: "Updates the masked fields of an existing form item",
	}
}

func deleteItemTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_item",
		Description: "Deletes the form item at the given index",
	}
}

func moveItemTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "move_item",
		Description: "Moves a form item to a new position",
	}
}

func updateFormInfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_form_info",
		Description: "Updates the form title and/or description",
	}
}

func updateFormSettingsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_form_settings",
		Description: "Updates form settings (email collection, quiz mode, grade release)",
	}
}

// toolRegistrations is the static capability table: one value record
// per exposed tool. Adding a tool means adding one entry here plus its
// handler; nothing else changes.
var toolRegistrations = []struct {
	name string
	add  func(*mcp.Server, *Server)
}{
	{"batch_update_form", func(m *mcp.Server, s *Server) {
		mcp.AddTool(m, batchUpdateFormTool(), batchUpdateFormHandler(s.translator))
	}},
	{"get_form", func(m *mcp.Server, s *Server) {
		mcp.AddTool(m, getFormTool(), getFormHandler(s.api))
	}},
	{"create_form", func(m *mcp.Server, s *Server) {
		mcp.AddTool(m, createFormTool(), createFormHandler(s.api))
	}},
	{"add_text_item", func(m *mcp.Server, s *Server) {
		mcp.AddTool(m, addTextItemTool(), addTextItemHandler(s.translator))
	}},
	{"add_page_break", func(m *mcp.Server, s *Server) {
		mcp.AddTool(m, addPageBreakTool(), addPageBreakHandler(s.translator))
	}},
	{"add_question_item", func(m *mcp.Server, s *Server) {
		mcp.AddTool(m, addQuestionItemTool(), addQuestionItemHandler(s.translator))
	}},
	{"add_question_group_item", func(m *mcp.Server, s *Server) {
		mcp.AddTool(m, addQuestionGroupItemTool(), addQuestionGroupItemHandler(s.translator))
	}},
	{"update_item", func(m *mcp.Server, s *Server) {
		mcp.AddTool(m, updateItemTool(), updateItemHandler(s.translator))
	}},
	{"delete_item", func(m *mcp.Server, s *Server) {
		mcp.AddTool(m, deleteItemTool(), deleteItemHandler(s.translator))
	}},
	{"move_item", func(m *mcp.Server, s *Server) {
		mcp.AddTool(m, moveItemTool(), moveItemHandler(s.translator))
	}},
	{"update_form_info", func(m *mcp.Server, s *Server) {
		mcp.AddTool(m, updateFormInfoTool(), updateFormInfoHandler(s.translator))
	}},
	{"update_form_settings", func(m *mcp.Server, s *Server) {
		mcp.AddTool(m, updateFormSettingsTool(), updateFormSettingsHandler(s.translator))
	}},
}

// registerTools adds every table entry to the MCP server.
func registerTools(m *mcp.Server, s *Server) {
	for _, registration := range toolRegistrations {
		registration.add(m, s)
		s.log.Debug("registered tool", "name", registration.name)
	}
}

// ToolNames returns the names of all exposed tools in registration
// order.
func ToolNames() []string {
	names := make([]string, len(toolRegistrations))
	for i, registration := range toolRegistrations {
		names[i] = registration.name
	}
	return names
}

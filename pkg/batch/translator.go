package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"google.golang.org/api/forms/v1"
)

// Client is the narrow contract the translator needs from the Forms
// API. *gforms.Service satisfies it; tests substitute a fake.
type Client interface {
	GetForm(ctx context.Context, formID string) (*forms.Form, error)
	BatchUpdate(ctx context.Context, formID string, req *forms.BatchUpdateFormRequest) (*forms.BatchUpdateFormResponse, error)
}

// ErrNoOperations is returned when a batch resolves to zero wire
// requests; an empty batch is never submitted.
var ErrNoOperations = errors.New("no operations to execute")

// OperationError tags a builder or bounds-check failure with the
// 1-based position the operation held in the caller's original list.
type OperationError struct {
	Position int
	Kind     OpKind
	Err      error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %d (%s): %v", e.Position, e.Kind, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Translator orchestrates one batch: fetch the snapshot, reorder,
// validate and build wire requests, then submit atomically. It holds
// no per-batch state; a single Translator serves concurrent batches.
type Translator struct {
	client Client
	log    hclog.Logger
}

// NewTranslator creates a translator using the given Forms client.
func NewTranslator(client Client, log hclog.Logger) *Translator {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Translator{
		client: client,
		log:    log,
	}
}

// Result reports one successfully applied batch.
type Result struct {
	// Form is the updated form returned by the remote after the batch
	// was applied.
	Form *forms.Form

	// Applied is the number of operations applied. The batch is
	// all-or-nothing, so this always equals the input length on
	// success.
	Applied int
}

// indexedOp pairs an operation with its 1-based position in the
// caller-supplied order, preserved across reordering for error
// messages.
type indexedOp struct {
	pos int
	op  Operation
}

// reorder front-loads create_item operations and reverses their
// relative order; every other kind keeps its original relative order
// after the creations.
//
// The Forms API resolves each createItem index against the form as it
// existed before the whole batch, not after prior creations in the
// same batch. Reversed, front-loaded creations compensate for that
// stale-index semantics.
func reorder(ops []Operation) []indexedOp {
	var creates, rest []indexedOp
	for i, op := range ops {
		entry := indexedOp{pos: i + 1, op: op}
		if op.Kind == OpCreateItem {
			creates = append(creates, entry)
		} else {
			rest = append(rest, entry)
		}
	}
	ordered := make([]indexedOp, 0, len(ops))
	for i := len(creates) - 1; i >= 0; i-- {
		ordered = append(ordered, creates[i])
	}
	return append(ordered, rest...)
}

func checkExistingIndex(index, count int64) error {
	if index < 0 || index >= count {
		return fmt.Errorf("index %d out of range: form has %d item(s)", index, count)
	}
	return nil
}

func checkInsertIndex(index, count int64) error {
	if index < 0 || index > count {
		return fmt.Errorf("insertion index %d out of range: form has %d item(s)", index, count)
	}
	return nil
}

// buildOperation validates one operation against the pre-batch
// snapshot and dispatches to its builder. All index checks use the
// original snapshot: the batch is submitted atomically, so no
// operation observes the effects of an earlier one.
func buildOperation(op Operation, snapshot *forms.Form) (*forms.Request, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	count := int64(len(snapshot.Items))

	switch op.Kind {
	case OpCreateItem:
		if op.CreateItem.Index != nil {
			if err := checkInsertIndex(*op.CreateItem.Index, count); err != nil {
				return nil, err
			}
		}
		return buildCreateItem(op.CreateItem, count)
	case OpUpdateItem:
		if err := checkExistingIndex(op.UpdateItem.Index, count); err != nil {
			return nil, err
		}
		return buildUpdateItem(op.UpdateItem, snapshot)
	case OpDeleteItem:
		if err := checkExistingIndex(op.DeleteItem.Index, count); err != nil {
			return nil, err
		}
		return buildDeleteItem(op.DeleteItem)
	case OpMoveItem:
		if err := checkExistingIndex(op.MoveItem.Index, count); err != nil {
			return nil, err
		}
		if err := checkInsertIndex(op.MoveItem.NewIndex, count); err != nil {
			return nil, err
		}
		return buildMoveItem(op.MoveItem)
	case OpUpdateFormInfo:
		return buildUpdateFormInfo(op.UpdateFormInfo)
	case OpUpdateFormSettings:
		return buildUpdateFormSettings(op.UpdateFormSettings)
	}
	return nil, fmt.Errorf("unsupported operation %q", op.Kind)
}

// BuildRequests validates the operation list against the snapshot and
// returns the wire requests in submission order. It is pure: calling
// it twice with the same inputs yields the same verdict and, on
// failure, the same offending position.
func BuildRequests(snapshot *forms.Form, ops []Operation) ([]*forms.Request, error) {
	ordered := reorder(ops)
	requests := make([]*forms.Request, 0, len(ordered))
	for _, entry := range ordered {
		req, err := buildOperation(entry.op, snapshot)
		if err != nil {
			return nil, &OperationError{Position: entry.pos, Kind: entry.op.Kind, Err: err}
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// Execute runs one batch against the given form. Validation failures
// abort before any write; a remote failure after validation is
// returned as-is, inheriting whatever atomicity the remote provides.
func (t *Translator) Execute(ctx context.Context, formID string, ops []Operation) (*Result, error) {
	if formID == "" {
		return nil, errors.New("form id is required")
	}
	log := t.log.With("form_id", formID, "batch_id", uuid.NewString())

	snapshot, err := t.client.GetForm(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("fetch form %q: %w", formID, err)
	}
	log.Debug("fetched form snapshot", "items", len(snapshot.Items), "operations", len(ops))

	requests, err := BuildRequests(snapshot, ops)
	if err != nil {
		log.Debug("batch validation failed", "error", err)
		return nil, err
	}
	if len(requests) == 0 {
		return nil, ErrNoOperations
	}

	resp, err := t.client.BatchUpdate(ctx, formID, &forms.BatchUpdateFormRequest{
		Requests:              requests,
		IncludeFormInResponse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("batch update of form %q: %w", formID, err)
	}

	updated := snapshot
	if resp != nil && resp.Form != nil {
		updated = resp.Form
	}
	log.Info("batch applied", "operations", len(requests), "items", len(updated.Items))

	return &Result{
		Form:    updated,
		Applied: len(requests),
	}, nil
}

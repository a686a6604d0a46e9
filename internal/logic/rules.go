package logic

import (
	"fmt"

	"github.com/blues/ets/internal/model"
)

// Access rules shared by the task, member and report endpoints. These are
// pure functions over the actor and the resource so that the rules can be
// exercised without a database.

// CanEditTask reports whether the actor may mutate (or tag) the task:
// leads always, otherwise only the current assignee or the creator.
func CanEditTask(actor *model.Member, task *model.Task) bool {
	if actor.IsLead {
		return true
	}
	if task.AssigneeID != nil && *task.AssigneeID == actor.ID {
		return true
	}
	if task.CreatorID != nil && *task.CreatorID == actor.ID {
		return true
	}
	return false
}

// CanAssign reports whether the actor may set a task's assignee to the
// given member. Non-leads may only assign to themselves.
func CanAssign(actor *model.Member, assigneeID int64) bool {
	return actor.IsLead || assigneeID == actor.ID
}

// TaskScope describes how a task listing is filtered.
type TaskScope struct {
	// AssigneeID filters on the assignee when set.
	AssigneeID *int64
	// OwnerID restricts results to tasks where the member is assignee
	// or creator when set.
	OwnerID *int64
}

// ListTaskScope resolves the listing scope for an actor. An explicit
// member_id filter takes precedence over self-scoping for every actor,
// including non-leads; without a filter, non-leads only see tasks they
// own.
func ListTaskScope(actor *model.Member, memberID *int64) TaskScope {
	if memberID != nil {
		return TaskScope{AssigneeID: memberID}
	}
	if !actor.IsLead {
		id := actor.ID
		return TaskScope{OwnerID: &id}
	}
	return TaskScope{}
}

// ReportScope resolves the member filter for a report request. Leads may
// request any member or the whole team; non-leads are forced onto their
// own data and get Forbidden when asking for someone else's.
func ReportScope(actor *model.Member, memberID *int64) (*int64, error) {
	if actor.IsLead {
		return memberID, nil
	}
	if memberID != nil && *memberID != actor.ID {
		return nil, fmt.Errorf("reports for other members require lead privileges: %w", ErrForbidden)
	}
	id := actor.ID
	return &id, nil
}

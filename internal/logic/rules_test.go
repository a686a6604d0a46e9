package logic

import (
	"errors"
	"testing"

	"github.com/blues/ets/internal/model"
)

func idPtr(id int64) *int64 { return &id }

func TestCanEditTask(t *testing.T) {
	lead := &model.Member{ID: 1, IsLead: true}
	assignee := &model.Member{ID: 2}
	creator := &model.Member{ID: 3}
	outsider := &model.Member{ID: 4}

	task := &model.Task{ID: 10, AssigneeID: idPtr(2), CreatorID: idPtr(3)}

	tests := []struct {
		name  string
		actor *model.Member
		want  bool
	}{
		{"lead", lead, true},
		{"assignee", assignee, true},
		{"creator", creator, true},
		{"outsider", outsider, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEditTask(tt.actor, task); got != tt.want {
				t.Errorf("CanEditTask() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanEditTaskOrphanedTask(t *testing.T) {
	// Assignee and creator removed: only leads may touch the task.
	task := &model.Task{ID: 10}
	if CanEditTask(&model.Member{ID: 2}, task) {
		t.Error("non-lead should not edit an orphaned task")
	}
	if !CanEditTask(&model.Member{ID: 1, IsLead: true}, task) {
		t.Error("lead should edit an orphaned task")
	}
}

func TestCanAssign(t *testing.T) {
	lead := &model.Member{ID: 1, IsLead: true}
	member := &model.Member{ID: 2}

	if !CanAssign(lead, 5) {
		t.Error("lead should assign to anyone")
	}
	if !CanAssign(member, 2) {
		t.Error("member should assign to self")
	}
	if CanAssign(member, 5) {
		t.Error("member should not assign to others")
	}
}

func TestListTaskScope(t *testing.T) {
	lead := &model.Member{ID: 1, IsLead: true}
	member := &model.Member{ID: 2}

	t.Run("lead unfiltered sees everything", func(t *testing.T) {
		scope := ListTaskScope(lead, nil)
		if scope.AssigneeID != nil || scope.OwnerID != nil {
			t.Errorf("scope = %+v, want empty", scope)
		}
	})

	t.Run("member unfiltered is self scoped", func(t *testing.T) {
		scope := ListTaskScope(member, nil)
		if scope.OwnerID == nil || *scope.OwnerID != member.ID {
			t.Errorf("OwnerID = %v, want %d", scope.OwnerID, member.ID)
		}
		if scope.AssigneeID != nil {
			t.Errorf("AssigneeID = %v, want nil", scope.AssigneeID)
		}
	})

	t.Run("explicit filter wins for every actor", func(t *testing.T) {
		for _, actor := range []*model.Member{lead, member} {
			scope := ListTaskScope(actor, idPtr(9))
			if scope.AssigneeID == nil || *scope.AssigneeID != 9 {
				t.Errorf("AssigneeID = %v, want 9", scope.AssigneeID)
			}
			if scope.OwnerID != nil {
				t.Errorf("OwnerID = %v, want nil", scope.OwnerID)
			}
		}
	})
}

func TestReportScope(t *testing.T) {
	lead := &model.Member{ID: 1, IsLead: true}
	member := &model.Member{ID: 2}

	t.Run("lead may aggregate all", func(t *testing.T) {
		got, err := ReportScope(lead, nil)
		if err != nil || got != nil {
			t.Errorf("ReportScope = (%v, %v), want (nil, nil)", got, err)
		}
	})

	t.Run("lead may pick any member", func(t *testing.T) {
		got, err := ReportScope(lead, idPtr(7))
		if err != nil || got == nil || *got != 7 {
			t.Errorf("ReportScope = (%v, %v), want 7", got, err)
		}
	})

	t.Run("member is forced onto self", func(t *testing.T) {
		got, err := ReportScope(member, nil)
		if err != nil || got == nil || *got != member.ID {
			t.Errorf("ReportScope = (%v, %v), want %d", got, err, member.ID)
		}
	})

	t.Run("member asking for self is fine", func(t *testing.T) {
		got, err := ReportScope(member, idPtr(member.ID))
		if err != nil || got == nil || *got != member.ID {
			t.Errorf("ReportScope = (%v, %v), want %d", got, err, member.ID)
		}
	})

	t.Run("member asking for another is forbidden", func(t *testing.T) {
		_, err := ReportScope(member, idPtr(7))
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})
}

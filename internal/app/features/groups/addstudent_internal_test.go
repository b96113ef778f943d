package groups

import (
	"testing"

	"github.com/rosterhub/rosterhub/internal/app/system/indexes"
	"github.com/rosterhub/rosterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// A group delete can commit between HandleAddStudent's precondition read
// and the membership insert. groupAfterAdd must detect the vanished group
// and undo the insert so the student is not locked out of other groups by
// a membership row whose group no longer exists.
func TestGroupAfterAdd_UndoesInsertForVanishedGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	h := NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	survivor := fixtures.CreateGroup(ctx, "DB Crew", teacher.ID)
	fixtures.CreateStudent(ctx, "RA001", "Priya Nair")

	// The insert landed, but the group is already gone.
	vanishedID := primitive.NewObjectID()
	if err := h.Memberships.Add(ctx, vanishedID, "RA001"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	_, err := h.groupAfterAdd(ctx, vanishedID, "RA001")
	if err != mongo.ErrNoDocuments {
		t.Fatalf("expected ErrNoDocuments, got %v", err)
	}

	// The orphan row must be gone: the student can join a real group.
	if err := h.Memberships.Add(ctx, survivor.ID, "RA001"); err != nil {
		t.Errorf("expected student to be free to join another group, got %v", err)
	}
}

// When the group is present, groupAfterAdd leaves the membership alone.
func TestGroupAfterAdd_KeepsMembershipWhenGroupPresent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	h := NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	group := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)
	fixtures.CreateStudent(ctx, "RA001", "Priya Nair")

	if err := h.Memberships.Add(ctx, group.ID, "RA001"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := h.groupAfterAdd(ctx, group.ID, "RA001")
	if err != nil {
		t.Fatalf("groupAfterAdd failed: %v", err)
	}
	if got.ID != group.ID {
		t.Errorf("group id: got %s, want %s", got.ID.Hex(), group.ID.Hex())
	}

	regs, err := h.Memberships.RegsByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("RegsByGroup failed: %v", err)
	}
	if len(regs) != 1 || regs[0] != "RA001" {
		t.Errorf("regs: got %v, want [RA001]", regs)
	}
}

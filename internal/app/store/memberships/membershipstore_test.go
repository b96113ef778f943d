package membershipstore_test

import (
	"errors"
	"testing"

	membershipstore "github.com/rosterhub/rosterhub/internal/app/store/memberships"
	"github.com/rosterhub/rosterhub/internal/app/system/indexes"
	"github.com/rosterhub/rosterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// setup ensures the unique reg_no index exists; the store relies on it.
func setup(t *testing.T) (*membershipstore.Store, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	return membershipstore.New(db), testutil.NewFixtures(t, db)
}

func TestStore_Add(t *testing.T) {
	store, fixtures := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	group := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)
	fixtures.CreateStudent(ctx, "RA001", "Priya Nair")

	if err := store.Add(ctx, group.ID, "RA001"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	count, err := fixtures.DB().Collection("group_memberships").CountDocuments(ctx, bson.M{
		"group_id": group.ID,
		"reg_no":   "RA001",
	})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 membership, got %d", count)
	}
}

func TestStore_Add_AlreadyInSameGroup(t *testing.T) {
	store, fixtures := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	group := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)
	fixtures.CreateStudent(ctx, "RA001", "Priya Nair")

	if err := store.Add(ctx, group.ID, "RA001"); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}

	err := store.Add(ctx, group.ID, "RA001")
	if !errors.Is(err, membershipstore.ErrAlreadyGrouped) {
		t.Errorf("expected ErrAlreadyGrouped, got %v", err)
	}
}

func TestStore_Add_AlreadyInAnotherGroup(t *testing.T) {
	store, fixtures := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	groupA := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)
	groupB := fixtures.CreateGroup(ctx, "DB Crew", teacher.ID)
	fixtures.CreateStudent(ctx, "RA001", "Priya Nair")

	if err := store.Add(ctx, groupA.ID, "RA001"); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}

	err := store.Add(ctx, groupB.ID, "RA001")
	if !errors.Is(err, membershipstore.ErrAlreadyGrouped) {
		t.Errorf("expected ErrAlreadyGrouped, got %v", err)
	}

	// The original membership must be untouched.
	gid, err := store.FindGroupIDByReg(ctx, "RA001")
	if err != nil {
		t.Fatalf("FindGroupIDByReg failed: %v", err)
	}
	if gid != groupA.ID {
		t.Errorf("expected membership to remain in %s, got %s", groupA.ID.Hex(), gid.Hex())
	}
}

func TestStore_Remove(t *testing.T) {
	store, fixtures := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	group := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)
	fixtures.CreateStudent(ctx, "RA001", "Priya Nair")

	if err := store.Add(ctx, group.ID, "RA001"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Remove(ctx, group.ID, "RA001"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	count, err := fixtures.DB().Collection("group_memberships").CountDocuments(ctx, bson.M{"reg_no": "RA001"})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 memberships, got %d", count)
	}
}

func TestStore_Remove_Twice(t *testing.T) {
	store, fixtures := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	group := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)
	fixtures.CreateStudent(ctx, "RA001", "Priya Nair")

	if err := store.Add(ctx, group.ID, "RA001"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Remove(ctx, group.ID, "RA001"); err != nil {
		t.Fatalf("first Remove failed: %v", err)
	}

	err := store.Remove(ctx, group.ID, "RA001")
	if !errors.Is(err, membershipstore.ErrNotInGroup) {
		t.Errorf("expected ErrNotInGroup on second remove, got %v", err)
	}
}

func TestStore_Remove_WrongGroup(t *testing.T) {
	store, fixtures := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	groupA := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)
	groupB := fixtures.CreateGroup(ctx, "DB Crew", teacher.ID)
	fixtures.CreateStudent(ctx, "RA001", "Priya Nair")

	if err := store.Add(ctx, groupA.ID, "RA001"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// The student is grouped, but not in groupB.
	err := store.Remove(ctx, groupB.ID, "RA001")
	if !errors.Is(err, membershipstore.ErrNotInGroup) {
		t.Errorf("expected ErrNotInGroup, got %v", err)
	}
}

func TestStore_RegsByGroup_JoinOrder(t *testing.T) {
	store, fixtures := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	group := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)
	for _, reg := range []string{"RA003", "RA001", "RA002"} {
		fixtures.CreateStudent(ctx, reg, "Student "+reg)
		if err := store.Add(ctx, group.ID, reg); err != nil {
			t.Fatalf("Add %s failed: %v", reg, err)
		}
	}

	regs, err := store.RegsByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("RegsByGroup failed: %v", err)
	}

	want := []string{"RA003", "RA001", "RA002"}
	if len(regs) != len(want) {
		t.Fatalf("expected %d regs, got %d", len(want), len(regs))
	}
	for i := range want {
		if regs[i] != want[i] {
			t.Errorf("regs[%d]: got %q, want %q (join order must be preserved)", i, regs[i], want[i])
		}
	}
}

func TestStore_RegsByGroups(t *testing.T) {
	store, fixtures := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	groupA := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)
	groupB := fixtures.CreateGroup(ctx, "DB Crew", teacher.ID)

	fixtures.CreateStudent(ctx, "RA001", "Priya Nair")
	fixtures.CreateStudent(ctx, "RA002", "Arjun Das")
	if err := store.Add(ctx, groupA.ID, "RA001"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Add(ctx, groupB.ID, "RA002"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	byGroup, err := store.RegsByGroups(ctx, []primitive.ObjectID{groupA.ID, groupB.ID})
	if err != nil {
		t.Fatalf("RegsByGroups failed: %v", err)
	}
	if len(byGroup[groupA.ID]) != 1 || byGroup[groupA.ID][0] != "RA001" {
		t.Errorf("groupA regs: got %v, want [RA001]", byGroup[groupA.ID])
	}
	if len(byGroup[groupB.ID]) != 1 || byGroup[groupB.ID][0] != "RA002" {
		t.Errorf("groupB regs: got %v, want [RA002]", byGroup[groupB.ID])
	}
}

func TestStore_FindGroupIDByReg_Ungrouped(t *testing.T) {
	store, fixtures := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateStudent(ctx, "RA001", "Priya Nair")

	_, err := store.FindGroupIDByReg(ctx, "RA001")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments for ungrouped student, got %v", err)
	}
}

func TestStore_DeleteByGroup(t *testing.T) {
	store, fixtures := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	group := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)
	for _, reg := range []string{"RA001", "RA002"} {
		fixtures.CreateStudent(ctx, reg, "Student "+reg)
		if err := store.Add(ctx, group.ID, reg); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	n, err := store.DeleteByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("DeleteByGroup failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 deleted, got %d", n)
	}

	// Freed students can join again.
	if err := store.Add(ctx, group.ID, "RA001"); err != nil {
		t.Errorf("expected re-add after DeleteByGroup to succeed, got %v", err)
	}
}

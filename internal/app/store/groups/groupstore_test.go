package groupstore_test

import (
	"errors"
	"testing"

	groupstore "github.com/rosterhub/rosterhub/internal/app/store/groups"
	"github.com/rosterhub/rosterhub/internal/domain/models"
	"github.com/rosterhub/rosterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")

	created, err := store.Create(ctx, models.Group{
		Title:     "Algo Squad",
		Subtitle:  "Weekly practice",
		Banner:    "green",
		TeacherID: teacher.ID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected a generated ID")
	}
	if created.TitleCI == "" {
		t.Error("expected TitleCI to be populated")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Algo Squad" {
		t.Errorf("Title: got %q, want %q", got.Title, "Algo Squad")
	}
	if got.Subtitle != "Weekly practice" {
		t.Errorf("Subtitle: got %q, want %q", got.Subtitle, "Weekly practice")
	}
	if got.GroupMarks != nil {
		t.Error("new group should have no marks")
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_UpdateInfo_PartialEdit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	group := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)

	// Blank title must keep the stored title.
	updated, err := store.UpdateInfo(ctx, group.ID, "", "New subtitle", "")
	if err != nil {
		t.Fatalf("UpdateInfo failed: %v", err)
	}
	if updated.Title != "Algo Squad" {
		t.Errorf("Title: got %q, want unchanged %q", updated.Title, "Algo Squad")
	}
	if updated.Subtitle != "New subtitle" {
		t.Errorf("Subtitle: got %q, want %q", updated.Subtitle, "New subtitle")
	}
	if updated.Banner != "blue" {
		t.Errorf("Banner: got %q, want unchanged %q", updated.Banner, "blue")
	}
}

func TestStore_UpdateInfo_AllBlank(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	group := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)

	updated, err := store.UpdateInfo(ctx, group.ID, "", "", "")
	if err != nil {
		t.Fatalf("UpdateInfo failed: %v", err)
	}
	if updated.Title != group.Title || updated.Banner != group.Banner {
		t.Error("all-blank edit must leave stored fields unchanged")
	}
}

func TestStore_UpdateInfo_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.UpdateInfo(ctx, primitive.NewObjectID(), "New Title", "", "")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_SetMarks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	group := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)

	updated, err := store.SetMarks(ctx, group.ID, 87.5)
	if err != nil {
		t.Fatalf("SetMarks failed: %v", err)
	}
	if updated.GroupMarks == nil || *updated.GroupMarks != 87.5 {
		t.Errorf("GroupMarks: got %v, want 87.5", updated.GroupMarks)
	}
	if updated.GroupMarksUpdatedAt == nil {
		t.Error("expected GroupMarksUpdatedAt to be stamped")
	}

	// Overwrite, not accumulate.
	updated, err = store.SetMarks(ctx, group.ID, 42)
	if err != nil {
		t.Fatalf("second SetMarks failed: %v", err)
	}
	if *updated.GroupMarks != 42 {
		t.Errorf("GroupMarks after overwrite: got %v, want 42", *updated.GroupMarks)
	}
}

func TestStore_SetMarks_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.SetMarks(ctx, primitive.NewObjectID(), 10)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	teacher := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	group := fixtures.CreateGroup(ctx, "Algo Squad", teacher.ID)

	n, err := store.Delete(ctx, group.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted, got %d", n)
	}

	n, err = store.Delete(ctx, group.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deleted on second call, got %d", n)
	}
}

func TestStore_ListByTeacher(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	asha := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	ravi := fixtures.CreateTeacher(ctx, "Ravi Menon", "ravi@university.edu")
	fixtures.CreateGroup(ctx, "Algo Squad", asha.ID)
	fixtures.CreateGroup(ctx, "DB Crew", asha.ID)
	fixtures.CreateGroup(ctx, "OS Lab", ravi.ID)

	groups, err := store.ListByTeacher(ctx, asha.ID)
	if err != nil {
		t.Fatalf("ListByTeacher failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	for _, g := range groups {
		if g.TeacherID != asha.ID {
			t.Errorf("group %q belongs to wrong teacher", g.Title)
		}
	}
}

func TestStore_SearchByTeacher(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	asha := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	ravi := fixtures.CreateTeacher(ctx, "Ravi Menon", "ravi@university.edu")
	fixtures.CreateGroup(ctx, "Algorithms Lab", asha.ID)
	fixtures.CreateGroup(ctx, "Databases", asha.ID)
	fixtures.CreateGroup(ctx, "Algorithms Extra", ravi.ID)

	// Case-insensitive substring match, scoped to the owning teacher.
	groups, err := store.SearchByTeacher(ctx, asha.ID, "algo")
	if err != nil {
		t.Fatalf("SearchByTeacher failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Title != "Algorithms Lab" {
		t.Errorf("got %q, want %q", groups[0].Title, "Algorithms Lab")
	}
}

func TestStore_SearchByTeacher_MatchesSubtitle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	asha := fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")
	created, err := store.Create(ctx, models.Group{
		Title:     "Batch 7",
		Subtitle:  "Compiler design practice",
		TeacherID: asha.ID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	groups, err := store.SearchByTeacher(ctx, asha.ID, "compiler")
	if err != nil {
		t.Fatalf("SearchByTeacher failed: %v", err)
	}
	if len(groups) != 1 || groups[0].ID != created.ID {
		t.Fatalf("expected subtitle match, got %d groups", len(groups))
	}
}

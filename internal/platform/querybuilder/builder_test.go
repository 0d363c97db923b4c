package querybuilder

import "testing"

func TestSelectBuilder_WhereAndOrder(t *testing.T) {
	query, args, err := Select("user_id", "golfer_id").
		From("picks").
		Where(Eq("user_id", "u1"), Neq("tournament_id", "t1")).
		OrderBy("golfer_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT user_id, golfer_id FROM picks WHERE user_id = $1 AND tournament_id <> $2 ORDER BY golfer_id"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "u1" || args[1] != "t1" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertBuilder_MultiRowWithSuffix(t *testing.T) {
	query, args, err := InsertInto("picks").
		Columns("user_id", "golfer_id").
		Values("u1", "g1").
		Values("u1", "g2").
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO picks (user_id, golfer_id) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder_SetAndWhere(t *testing.T) {
	query, args, err := Update("golfers").
		Set("name", "Scottie Scheffler").
		Where(Eq("id", "46046")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE golfers SET name = $1 WHERE id = $2"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "Scottie Scheffler" || args[1] != "46046" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder_RequiresConditions(t *testing.T) {
	if _, _, err := Update("golfers").Set("name", "x").ToSQL(); err == nil {
		t.Fatal("expected error for update without conditions")
	}
}

func TestDeleteBuilder_RequiresConditions(t *testing.T) {
	if _, _, err := DeleteFrom("picks").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}

	query, args, err := DeleteFrom("picks").
		Where(Eq("user_id", "u1"), Eq("tournament_id", "t1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete: %v", err)
	}
	if query != "DELETE FROM picks WHERE user_id = $1 AND tournament_id = $2" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModel_UsesDBTags(t *testing.T) {
	type row struct {
		UserID   string `db:"user_id"`
		GolferID string `db:"golfer_id"`
		Ignored  string `db:"-"`
	}

	query, args, err := InsertModel("picks", row{UserID: "u1", GolferID: "g1", Ignored: "x"}, "")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO picks (user_id, golfer_id) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

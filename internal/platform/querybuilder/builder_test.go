package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelect_WithConditionsAndPaging(t *testing.T) {
	query, args, err := Select("id", "venue", "date").
		From("matches").
		Where(
			ILike("venue", "%anfield%"),
			IsNull("deleted_at"),
		).
		OrderBy("date DESC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("to sql: %v", err)
	}

	want := "SELECT id, venue, date FROM matches WHERE venue ILIKE $1 AND deleted_at IS NULL ORDER BY date DESC LIMIT 10 OFFSET 20"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if !reflect.DeepEqual(args, []any{"%anfield%"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_InWithEmptyValuesNeverMatches(t *testing.T) {
	query, args, err := Select("id").From("players").Where(In("public_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("to sql: %v", err)
	}

	if query != "SELECT id FROM players WHERE 1=0" {
		t.Fatalf("unexpected query: %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsert_MultiRowWithSuffix(t *testing.T) {
	query, args, err := InsertInto("match_players").
		Columns("match_id", "player_id", "starter").
		Values("m1", "p1", true).
		Values("m1", "p2", false).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("to sql: %v", err)
	}

	want := "INSERT INTO match_players (match_id, player_id, starter) VALUES ($1, $2, $3), ($4, $5, $6) RETURNING id"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if len(args) != 6 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsert_RowLengthMismatch(t *testing.T) {
	_, _, err := InsertInto("clubs").Columns("id", "name").Values("only-one").ToSQL()
	if err == nil {
		t.Fatal("expected row length mismatch error")
	}
}

func TestUpdate_RequiresWhere(t *testing.T) {
	_, _, err := Update("players").Set("name", "x").ToSQL()
	if err == nil {
		t.Fatal("expected error for update without where")
	}
}

func TestUpdate_BuildsSetsAndWhere(t *testing.T) {
	query, args, err := Update("players").
		Set("name", "Ada").
		Set("rating", 7.5).
		Where(Eq("public_id", "p1"), IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		t.Fatalf("to sql: %v", err)
	}

	want := "UPDATE players SET name = $1, rating = $2 WHERE public_id = $3 AND deleted_at IS NULL"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if !reflect.DeepEqual(args, []any{"Ada", 7.5, "p1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestExpr_RewritesPlaceholders(t *testing.T) {
	query, args, err := Select("id").From("matches").
		Where(Expr("date >= ? AND date < ?", "2026-01-01", "2026-02-01")).
		ToSQL()
	if err != nil {
		t.Fatalf("to sql: %v", err)
	}

	want := "SELECT id FROM matches WHERE date >= $1 AND date < $2"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if !reflect.DeepEqual(args, []any{"2026-01-01", "2026-02-01"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

package postgres

import (
	"database/sql"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/club-admin/internal/domain/player"
)

type playerTableModel struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	DateOfBirth   time.Time `db:"date_of_birth"`
	PositionID    string    `db:"position_id"`
	CountryID     string    `db:"country_id"`
	CurrentClub   []byte    `db:"current_club"`
	PreviousClubs []byte    `db:"previous_clubs"`
	NationalTeams []byte    `db:"national_teams"`
	Rating        float64   `db:"rating"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type ratingHistoryTableModel struct {
	ID        int64          `db:"id"`
	PlayerID  string         `db:"player_id"`
	EntryDate time.Time      `db:"entry_date"`
	Change    float64        `db:"change"`
	EntryType string         `db:"entry_type"`
	MatchID   sql.NullString `db:"match_id"`
	CreatedAt time.Time      `db:"created_at"`
}

// clubSpellJSON is the JSONB shape of one club stint.
type clubSpellJSON struct {
	ClubID string     `json:"clubId"`
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
}

type nationalTeamSpellJSON struct {
	TeamID string     `json:"teamId"`
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
}

func playerToRow(p player.Player) (playerTableModel, error) {
	currentClub, err := marshalCurrentClub(p.CurrentClub)
	if err != nil {
		return playerTableModel{}, err
	}
	previousClubs, err := marshalClubSpells(p.PreviousClubs)
	if err != nil {
		return playerTableModel{}, err
	}
	nationalTeams, err := marshalNationalTeamSpells(p.NationalTeams)
	if err != nil {
		return playerTableModel{}, err
	}

	return playerTableModel{
		ID:            p.ID,
		Name:          p.Name,
		DateOfBirth:   p.DateOfBirth,
		PositionID:    p.PositionID,
		CountryID:     p.CountryID,
		CurrentClub:   currentClub,
		PreviousClubs: previousClubs,
		NationalTeams: nationalTeams,
		Rating:        p.Rating,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}, nil
}

func playerFromRow(row playerTableModel) (player.Player, error) {
	p := player.Player{
		ID:          row.ID,
		Name:        row.Name,
		DateOfBirth: row.DateOfBirth,
		PositionID:  row.PositionID,
		CountryID:   row.CountryID,
		Rating:      row.Rating,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if len(row.CurrentClub) > 0 {
		var spell clubSpellJSON
		if err := sonic.Unmarshal(row.CurrentClub, &spell); err != nil {
			return player.Player{}, fmt.Errorf("unmarshal current club for player %s: %w", row.ID, err)
		}
		p.CurrentClub = clubSpellFromJSON(spell)
	}
	if len(row.PreviousClubs) > 0 {
		var spells []clubSpellJSON
		if err := sonic.Unmarshal(row.PreviousClubs, &spells); err != nil {
			return player.Player{}, fmt.Errorf("unmarshal previous clubs for player %s: %w", row.ID, err)
		}
		for _, spell := range spells {
			p.PreviousClubs = append(p.PreviousClubs, clubSpellFromJSON(spell))
		}
	}
	if len(row.NationalTeams) > 0 {
		var spells []nationalTeamSpellJSON
		if err := sonic.Unmarshal(row.NationalTeams, &spells); err != nil {
			return player.Player{}, fmt.Errorf("unmarshal national teams for player %s: %w", row.ID, err)
		}
		for _, spell := range spells {
			p.NationalTeams = append(p.NationalTeams, nationalTeamSpellFromJSON(spell))
		}
	}

	return p, nil
}

func ratingEntryFromRow(row ratingHistoryTableModel) player.RatingEntry {
	entry := player.RatingEntry{
		Date:   row.EntryDate,
		Change: row.Change,
		Type:   player.RatingEntryType(row.EntryType),
	}
	if row.MatchID.Valid {
		entry.MatchID = row.MatchID.String
	}
	return entry
}

func marshalCurrentClub(spell player.ClubSpell) ([]byte, error) {
	if spell.ClubID == "" {
		return nil, nil
	}
	payload, err := sonic.Marshal(clubSpellToJSON(spell))
	if err != nil {
		return nil, fmt.Errorf("marshal current club: %w", err)
	}
	return payload, nil
}

func marshalClubSpells(spells []player.ClubSpell) ([]byte, error) {
	out := make([]clubSpellJSON, 0, len(spells))
	for _, spell := range spells {
		out = append(out, clubSpellToJSON(spell))
	}
	payload, err := sonic.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal club spells: %w", err)
	}
	return payload, nil
}

func marshalNationalTeamSpells(spells []player.NationalTeamSpell) ([]byte, error) {
	out := make([]nationalTeamSpellJSON, 0, len(spells))
	for _, spell := range spells {
		item := nationalTeamSpellJSON{TeamID: spell.TeamID}
		if !spell.From.IsZero() {
			from := spell.From
			item.From = &from
		}
		if !spell.To.IsZero() {
			to := spell.To
			item.To = &to
		}
		out = append(out, item)
	}
	payload, err := sonic.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal national team spells: %w", err)
	}
	return payload, nil
}

func clubSpellToJSON(spell player.ClubSpell) clubSpellJSON {
	out := clubSpellJSON{ClubID: spell.ClubID}
	if !spell.From.IsZero() {
		from := spell.From
		out.From = &from
	}
	if !spell.To.IsZero() {
		to := spell.To
		out.To = &to
	}
	return out
}

func clubSpellFromJSON(spell clubSpellJSON) player.ClubSpell {
	out := player.ClubSpell{ClubID: spell.ClubID}
	if spell.From != nil {
		out.From = *spell.From
	}
	if spell.To != nil {
		out.To = *spell.To
	}
	return out
}

func nationalTeamSpellFromJSON(spell nationalTeamSpellJSON) player.NationalTeamSpell {
	out := player.NationalTeamSpell{TeamID: spell.TeamID}
	if spell.From != nil {
		out.From = *spell.From
	}
	if spell.To != nil {
		out.To = *spell.To
	}
	return out
}

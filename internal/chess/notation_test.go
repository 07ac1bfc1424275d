package chess

import (
	"errors"
	"testing"

	engerrors "github.com/lgbarn/ajedrez-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input string
		want  Pos
	}{
		{"a8", Pos{Row: 0, Col: 0}},
		{"h8", Pos{Row: 0, Col: 7}},
		{"a1", Pos{Row: 7, Col: 0}},
		{"h1", Pos{Row: 7, Col: 7}},
		{"e4", Pos{Row: 4, Col: 4}},
		{"d5", Pos{Row: 3, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSquare(tt.input)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSquare_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", engerrors.ErrStringTooShort},
		{"e", engerrors.ErrStringTooShort},
		{"i1", engerrors.ErrInvalidPositionFile},
		{"41", engerrors.ErrInvalidPositionFile},
		{"a0", engerrors.ErrInvalidPositionRank},
		{"a9", engerrors.ErrInvalidPositionRank},
		{"az", engerrors.ErrInvalidPositionRank},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseSquare(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseSquare(%q) error = %v; want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  Move
	}{
		{"a8b8", Move{From: Pos{Row: 0, Col: 0}, To: Pos{Row: 0, Col: 1}}},
		{"a1a8", Move{From: Pos{Row: 7, Col: 0}, To: Pos{Row: 0, Col: 0}}},
		{"e2e4", Move{From: Pos{Row: 6, Col: 4}, To: Pos{Row: 4, Col: 4}}},
		{"g8f6", Move{From: Pos{Row: 0, Col: 6}, To: Pos{Row: 2, Col: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %+v; want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", engerrors.ErrStringTooShort},
		{"x", engerrors.ErrStringTooShort},
		{"123", engerrors.ErrStringTooShort},
		{"i1i1", engerrors.ErrInvalidPositionFile},
		{"01i1", engerrors.ErrInvalidPositionFile},
		{"a1i1", engerrors.ErrInvalidPositionFile},
		{"a0a0", engerrors.ErrInvalidPositionRank},
		{"aza0", engerrors.ErrInvalidPositionRank},
		{"a1h9", engerrors.ErrInvalidPositionRank},
		{"a1a1", engerrors.ErrUselessMove},
		{"e4e4", engerrors.ErrUselessMove},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseMove(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseMove(%q) error = %v; want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestRankRowRoundTrip(t *testing.T) {
	for rank := 1; rank <= BoardSize; rank++ {
		row, err := RankToRow(rank)
		if err != nil {
			t.Fatalf("RankToRow(%d) error: %v", rank, err)
		}
		if got := RowToRank(row); got != rank {
			t.Errorf("RowToRank(RankToRow(%d)) = %d; want %d", rank, got, rank)
		}
	}

	if _, err := RankToRow(0); !errors.Is(err, engerrors.ErrInvalidPositionRank) {
		t.Errorf("RankToRow(0) error = %v; want ErrInvalidPositionRank", err)
	}
	if _, err := RankToRow(9); !errors.Is(err, engerrors.ErrInvalidPositionRank) {
		t.Errorf("RankToRow(9) error = %v; want ErrInvalidPositionRank", err)
	}
}

func TestFileColRoundTrip(t *testing.T) {
	for file := byte('a'); file <= 'h'; file++ {
		col, err := FileToCol(file)
		if err != nil {
			t.Fatalf("FileToCol(%c) error: %v", file, err)
		}
		if got := ColToFile(col); got != file {
			t.Errorf("ColToFile(FileToCol(%c)) = %c; want %c", file, got, file)
		}
	}

	if _, err := FileToCol('i'); !errors.Is(err, engerrors.ErrInvalidPositionFile) {
		t.Errorf("FileToCol('i') error = %v; want ErrInvalidPositionFile", err)
	}
	if _, err := FileToCol('A'); !errors.Is(err, engerrors.ErrInvalidPositionFile) {
		t.Errorf("FileToCol('A') error = %v; want ErrInvalidPositionFile", err)
	}
}

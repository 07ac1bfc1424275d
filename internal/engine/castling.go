package engine

import "github.com/lgbarn/ajedrez-go/internal/chess"

// homeRow returns the back-rank row of a color.
func homeRow(color chess.Color) int {
	if color == chess.White {
		return 7
	}
	return 0
}

// CanCastle reports whether the given color may castle on the given side.
// All of the following must hold: king and rook sit on their home squares,
// correctly typed and colored, neither has ever moved; the squares strictly
// between them are empty (only verified when checkEmpty is true, so rights
// summaries can ignore momentary blockage); the king's square is not
// attacked; and neither square the king transits, destination included, is
// attacked.
func CanCastle(board *chess.Board, color chess.Color, side chess.CastleSide, checkEmpty bool) bool {
	row := homeRow(color)

	rookCol := chess.DefaultKingsideRookCol
	if side == chess.CastleQueenside {
		rookCol = chess.DefaultQueensideRookCol
	}

	king := board.Piece(row, chess.DefaultKingCol)
	rook := board.Piece(row, rookCol)
	if king == nil || rook == nil {
		return false
	}
	if king.Type != chess.King || rook.Type != chess.Rook {
		return false
	}
	if king.Color != color || rook.Color != color {
		return false
	}
	if king.Moves != 0 || rook.Moves != 0 {
		return false
	}

	step := 1
	if side == chess.CastleQueenside {
		step = -1
	}

	if checkEmpty {
		for col := chess.DefaultKingCol + step; col != rookCol; col += step {
			if !board.At(row, col).IsEmpty() {
				return false
			}
		}
	}

	attacked := AttackedSquares(board, color.Opposite())
	if attacked[chess.Pos{Row: row, Col: chess.DefaultKingCol}] {
		return false
	}
	for _, off := range []int{1, 2} {
		if attacked[chess.Pos{Row: row, Col: chess.DefaultKingCol + step*off}] {
			return false
		}
	}

	return true
}

// Rights summarizes castling availability for both sides. The FEN encoder
// and board queries call it with checkEmpty=false so that rights survive a
// momentarily blocked back rank.
func Rights(board *chess.Board, checkEmpty bool) chess.CastlingRights {
	return chess.CastlingRights{
		WhiteKingside:     CanCastle(board, chess.White, chess.CastleKingside, checkEmpty),
		WhiteQueenside:    CanCastle(board, chess.White, chess.CastleQueenside, checkEmpty),
		BlackKingside:     CanCastle(board, chess.Black, chess.CastleKingside, checkEmpty),
		BlackQueenside:    CanCastle(board, chess.Black, chess.CastleQueenside, checkEmpty),
		CheckEmptySquares: checkEmpty,
	}
}

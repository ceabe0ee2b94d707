// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package board

import (
	"github.com/kestrelchess/kestrel/pkg/attacks"
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// moveGenState stores the utility bitboards computed once per call to
// GenerateMoves and shared across every piece type's move appender. It is
// kept separate from Board since none of this is needed outside the scope
// of a single generation call.
type moveGenState struct {
	*Board

	MoveList []move.Move

	Us, Them piece.Color

	// adding Down to a square gives the square "below" it, i.e. towards
	// the side-to-move's own back rank.
	Down square.Square

	PromotionRankBB  bitboard.Board
	EnPassantRankBB  bitboard.Board
	DoublePushRankBB bitboard.Board

	TacticalOnly bool

	Friends, Enemies, Occupied bitboard.Board

	// Target is the set of squares non-king pieces may move to: every
	// square not occupied by a friend, further restricted to the
	// check-mask when in check.
	Target bitboard.Board

	// CheckN is the number of checkers on the king (0, 1, or 2).
	CheckN int
	// CheckMask is the set of squares a move must land on to resolve
	// check: the checker's square, plus, for a sliding checker, the
	// squares between it and the king. Universe when not in check.
	CheckMask bitboard.Board

	// PinnedD and PinnedHV are, respectively, the diagonal and
	// horizontal/vertical pin-rays currently active on the king.
	PinnedD, PinnedHV bitboard.Board

	SeenByEnemy bitboard.Board
}

// GenerateMoves generates every legal move in the current position.
func (b *Board) GenerateMoves() []move.Move {
	var s moveGenState
	s.init(b, false)
	return s.generate()
}

// GenerateCaptures generates every legal tactical move in the current
// position: captures, en passants, promotions, and quiet moves that
// give check, for use in quiescence search.
func (b *Board) GenerateCaptures() []move.Move {
	var s moveGenState
	s.init(b, true)
	moves := s.generate()

	for _, m := range b.GenerateMoves() {
		if !m.IsCapture() && m.Tag() != move.Promotion && b.givesCheck(m) {
			moves = append(moves, m)
		}
	}

	return moves
}

// givesCheck reports whether playing m would leave the opponent in check.
func (b *Board) givesCheck(m move.Move) bool {
	b.MakeMove(m)
	check := b.IsInCheck(b.SideToMove)
	b.UnmakeMove()
	return check
}

func (s *moveGenState) generate() []move.Move {
	s.appendKingMoves()

	if s.CheckN >= 2 {
		// only king moves are legal in double check
		return s.MoveList
	}

	s.appendKnightMoves()
	s.appendBishopMoves()
	s.appendRookMoves()
	s.appendQueenMoves()
	s.appendPawnMoves()

	return s.MoveList
}

// init computes every utility bitboard needed for move generation.
func (s *moveGenState) init(b *Board, tacticalOnly bool) {
	s.Board = b
	s.TacticalOnly = tacticalOnly

	s.Us = b.SideToMove
	s.Them = s.Us.Other()

	s.Friends = b.ColorBBs[s.Us]
	s.Enemies = b.ColorBBs[s.Them]
	s.Occupied = s.Friends | s.Enemies

	if s.Us == piece.White {
		s.Down = -8
		s.PromotionRankBB = bitboard.Rank8
		s.EnPassantRankBB = bitboard.Rank5
		s.DoublePushRankBB = bitboard.Rank3
	} else {
		s.Down = 8
		s.PromotionRankBB = bitboard.Rank1
		s.EnPassantRankBB = bitboard.Rank4
		s.DoublePushRankBB = bitboard.Rank6
	}

	s.calculateCheckmask()
	s.calculatePinmask()

	s.SeenByEnemy = s.seenSquares(s.Them)

	if tacticalOnly {
		s.Target = s.Enemies & s.CheckMask
	} else {
		s.Target = ^s.Friends & s.CheckMask
	}

	// 31 is the average number of legal moves in a chess position.
	// https://chess.stackexchange.com/a/24325/33336
	s.MoveList = make([]move.Move, 0, 31)
}

// calculateCheckmask computes CheckN and CheckMask; see their doc comments.
func (s *moveGenState) calculateCheckmask() {
	s.CheckN = 0
	s.CheckMask = bitboard.Empty

	kingSq := s.Kings[s.Us]

	pawns := s.Pawns(s.Them) & attacks.PawnAttacks(kingSq, s.Us)
	knights := s.Knights(s.Them) & attacks.KnightAttacks(kingSq)
	bishops := (s.Bishops(s.Them) | s.Queens(s.Them)) & attacks.Bishop(kingSq, bitboard.Empty, s.Occupied)
	rooks := (s.Rooks(s.Them) | s.Queens(s.Them)) & attacks.Rook(kingSq, bitboard.Empty, s.Occupied)

	// a pawn and a knight cannot check the king simultaneously, since
	// neither is a sliding piece that could produce a discovered check
	// alongside the other.
	switch {
	case pawns != bitboard.Empty:
		s.CheckMask |= pawns
		s.CheckN++
	case knights != bitboard.Empty:
		s.CheckMask |= knights
		s.CheckN++
	}

	if bishops != bitboard.Empty {
		bishopSq := bishops.FirstOne()
		s.CheckMask |= bitboard.Between[kingSq][bishopSq] | bitboard.Squares[bishopSq]
		s.CheckN++
	}

	if s.CheckN < 2 && rooks != bitboard.Empty {
		if s.CheckN == 0 && rooks.Count() > 1 {
			// double check by two rooks/queens; checkmask stays empty
			s.CheckN++
		} else {
			rookSq := rooks.FirstOne()
			s.CheckMask |= bitboard.Between[kingSq][rookSq] | bitboard.Squares[rookSq]
			s.CheckN++
		}
	}

	if s.CheckN == 0 {
		s.CheckMask = bitboard.Universe
	}
}

// calculatePinmask computes PinnedD and PinnedHV: rays from the king
// along which exactly one friendly piece blocks an enemy slider, pinning
// that piece to its ray.
func (s *moveGenState) calculatePinmask() {
	kingSq := s.Kings[s.Us]

	s.PinnedD = bitboard.Empty
	s.PinnedHV = bitboard.Empty

	for rooks := (s.Rooks(s.Them) | s.Queens(s.Them)) & attacks.Rook(kingSq, bitboard.Empty, s.Enemies); rooks != bitboard.Empty; {
		rook := rooks.Pop()
		ray := bitboard.Between[kingSq][rook] | bitboard.Squares[rook]
		if (ray & s.Friends).Count() == 1 {
			s.PinnedHV |= ray
		}
	}

	for bishops := (s.Bishops(s.Them) | s.Queens(s.Them)) & attacks.Bishop(kingSq, bitboard.Empty, s.Enemies); bishops != bitboard.Empty; {
		bishop := bishops.Pop()
		ray := bitboard.Between[kingSq][bishop] | bitboard.Squares[bishop]
		if (ray & s.Friends).Count() == 1 {
			s.PinnedD |= ray
		}
	}
}

// seenSquares returns every square attacked by a piece of color by. The
// king of the other color is excluded as a sliding-ray blocker, since it
// would have to move off the ray rather than block it.
func (s *moveGenState) seenSquares(by piece.Color) bitboard.Board {
	pawns := s.Pawns(by)
	knights := s.Knights(by)
	bishops := s.Bishops(by)
	rooks := s.Rooks(by)
	queens := s.Queens(by)

	blockers := s.Occupied &^ s.King(by.Other())

	var seen bitboard.Board
	for pawnBB := pawns; pawnBB != bitboard.Empty; {
		from := pawnBB.Pop()
		seen |= attacks.PawnAttacks(from, by)
	}

	for knightBB := knights; knightBB != bitboard.Empty; {
		from := knightBB.Pop()
		seen |= attacks.KnightAttacks(from)
	}

	for bishopBB := bishops; bishopBB != bitboard.Empty; {
		from := bishopBB.Pop()
		seen |= attacks.Bishop(from, bitboard.Empty, blockers)
	}

	for rookBB := rooks; rookBB != bitboard.Empty; {
		from := rookBB.Pop()
		seen |= attacks.Rook(from, bitboard.Empty, blockers)
	}

	for queenBB := queens; queenBB != bitboard.Empty; {
		from := queenBB.Pop()
		seen |= attacks.Queen(from, bitboard.Empty, blockers)
	}

	seen |= attacks.KingAttacks(s.Kings[by])

	return seen
}

func (s *moveGenState) appendKingMoves() {
	kingSq := s.Kings[s.Us]

	kingMoves := attacks.KingAttacks(kingSq) &^ (s.Friends | s.SeenByEnemy)
	if s.TacticalOnly {
		kingMoves &= s.Enemies
	}
	s.serializeMoves(kingSq, kingMoves)

	if s.CheckN == 0 && !s.TacticalOnly {
		s.appendCastlingMoves()
	}
}

func (s *moveGenState) appendKnightMoves() {
	knights := s.Knights(s.Us) &^ (s.PinnedD | s.PinnedHV)
	for knights != bitboard.Empty {
		from := knights.Pop()
		s.serializeMoves(from, attacks.KnightAttacks(from)&s.Target)
	}
}

func (s *moveGenState) appendBishopMoves() {
	s.appendSlidingMoves(s.Bishops(s.Us), s.PinnedD, s.PinnedHV, attacks.Bishop)
}

func (s *moveGenState) appendRookMoves() {
	s.appendSlidingMoves(s.Rooks(s.Us), s.PinnedHV, s.PinnedD, attacks.Rook)
}

func (s *moveGenState) appendQueenMoves() {
	queens := s.Queens(s.Us)
	s.appendSlidingMoves(queens, s.PinnedD, s.PinnedHV, attacks.Bishop)
	s.appendSlidingMoves(queens, s.PinnedHV, s.PinnedD, attacks.Rook)
}

// appendSlidingMoves appends moves for pieces sliding along ownPin (the
// pin direction this piece type can still move within) after removing
// those pinned along otherPin (a direction this piece type cannot move
// within at all, e.g. a bishop pinned horizontally).
func (s *moveGenState) appendSlidingMoves(pieces, ownPin, otherPin bitboard.Board, raysFrom func(square.Square, bitboard.Board, bitboard.Board) bitboard.Board) {
	pieces &^= otherPin

	pinned := pieces & ownPin
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		s.serializeMoves(from, raysFrom(from, bitboard.Empty, s.Occupied)&s.Target&ownPin)
	}

	unpinned := pieces &^ ownPin
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		s.serializeMoves(from, raysFrom(from, bitboard.Empty, s.Occupied)&s.Target)
	}
}

func (s *moveGenState) appendCastlingMoves() {
	occSeen := s.Occupied | s.SeenByEnemy

	switch s.Us {
	case piece.White:
		if s.CastlingRights&castling.WhiteKingside != 0 && occSeen&bitboard.F1G1 == bitboard.Empty {
			s.MoveList = append(s.MoveList, move.New(square.E1, square.G1, piece.King, move.Castle))
		}
		if s.CastlingRights&castling.WhiteQueenside != 0 &&
			s.Occupied&bitboard.B1C1D1 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C1D1 == bitboard.Empty {
			s.MoveList = append(s.MoveList, move.New(square.E1, square.C1, piece.King, move.Castle))
		}
	case piece.Black:
		if s.CastlingRights&castling.BlackKingside != 0 && occSeen&bitboard.F8G8 == bitboard.Empty {
			s.MoveList = append(s.MoveList, move.New(square.E8, square.G8, piece.King, move.Castle))
		}
		if s.CastlingRights&castling.BlackQueenside != 0 &&
			s.Occupied&bitboard.B8C8D8 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C8D8 == bitboard.Empty {
			s.MoveList = append(s.MoveList, move.New(square.E8, square.C8, piece.King, move.Castle))
		}
	}
}

func (s *moveGenState) appendPawnMoves() {
	pawns := s.Pawns(s.Us)

	pushTarget := s.CheckMask &^ s.Occupied
	if s.TacticalOnly {
		// a quiet push is only tactical when it promotes; a double push
		// never lands on the promotion rank, so restricting pushTarget
		// here zeroes doublePush below too.
		pushTarget &= s.PromotionRankBB
	}
	captureTarget := s.Enemies & s.CheckMask

	pawnsThatPush := pawns &^ s.PinnedD
	unpinnedPush := pawnsThatPush &^ s.PinnedHV
	pinnedPush := pawnsThatPush & s.PinnedHV

	singlePush := (pawnPushes(unpinnedPush, s.Us) | (pawnPushes(pinnedPush, s.Us) & s.PinnedHV)) &^ s.Occupied
	doublePush := pawnPushes(singlePush&s.DoublePushRankBB, s.Us) & pushTarget
	singlePush &= pushTarget

	s.appendPawnPushes(singlePush &^ s.PromotionRankBB, s.Down)
	s.appendPawnPushes(singlePush&s.PromotionRankBB, s.Down, true)
	s.appendPawnPushes(doublePush, 2*s.Down)

	pawnsThatAttack := pawns &^ s.PinnedHV
	unpinnedAttack := pawnsThatAttack &^ s.PinnedD
	pinnedAttack := pawnsThatAttack & s.PinnedD

	leftAttacks := pawnAttacksLeft(unpinnedAttack, s.Us)&captureTarget | pawnAttacksLeft(pinnedAttack, s.Us)&captureTarget&s.PinnedD
	rightAttacks := pawnAttacksRight(unpinnedAttack, s.Us)&captureTarget | pawnAttacksRight(pinnedAttack, s.Us)&captureTarget&s.PinnedD

	s.appendPawnAttacks(leftAttacks&^s.PromotionRankBB, s.Us, false, false)
	s.appendPawnAttacks(leftAttacks&s.PromotionRankBB, s.Us, false, true)
	s.appendPawnAttacks(rightAttacks&^s.PromotionRankBB, s.Us, true, false)
	s.appendPawnAttacks(rightAttacks&s.PromotionRankBB, s.Us, true, true)

	if s.EnPassantTarget != square.None {
		s.appendEnPassant(pawnsThatAttack)
	}
}

func (s *moveGenState) appendPawnPushes(to bitboard.Board, down square.Square, promotion ...bool) {
	isPromotion := len(promotion) > 0 && promotion[0]
	for to != bitboard.Empty {
		t := to.Pop()
		from := t + down
		if isPromotion {
			s.appendPromotions(from, t, false)
		} else {
			s.MoveList = append(s.MoveList, move.New(from, t, piece.Pawn, move.Quiet))
		}
	}
}

func (s *moveGenState) appendPawnAttacks(to bitboard.Board, us piece.Color, right, isPromotion bool) {
	var back square.Square
	switch {
	case us == piece.White && right:
		back = -9
	case us == piece.White && !right:
		back = -7
	case us == piece.Black && right:
		back = 9
	default:
		back = 7
	}

	for to != bitboard.Empty {
		t := to.Pop()
		from := t + back
		if isPromotion {
			s.appendPromotions(from, t, true)
		} else {
			s.MoveList = append(s.MoveList, move.New(from, t, piece.Pawn, move.Capture))
		}
	}
}

func (s *moveGenState) appendPromotions(from, to square.Square, capture bool) {
	for _, p := range piece.Promotions {
		s.MoveList = append(s.MoveList, move.NewPromotion(from, to, p, capture))
	}
}

// appendEnPassant handles the single en passant capture available, if
// any, including the rare case where capturing would expose the king to
// a horizontal rook/queen pin along the en passant rank (the one check
// this move generator does not fully resolve via the pin-mask, since it
// involves two pawns disappearing from the rank at once).
func (s *moveGenState) appendEnPassant(pawnsThatAttack bitboard.Board) {
	target := s.EnPassantTarget
	capturedPawn := target + s.Down

	epMask := bitboard.Squares[target] | bitboard.Squares[capturedPawn]
	if s.CheckMask&epMask == bitboard.Empty {
		return
	}

	kingSq := s.Kings[s.Us]
	kingOnRank := bitboard.Squares[kingSq] & s.EnPassantRankBB
	enemySliders := (s.Rooks(s.Them) | s.Queens(s.Them)) & s.EnPassantRankBB
	possiblePin := kingOnRank != bitboard.Empty && enemySliders != bitboard.Empty

	for fromBB := attacks.PawnAttacks(target, s.Them) & pawnsThatAttack; fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		if s.PinnedD.IsSet(from) && !s.PinnedD.IsSet(target) {
			continue // pinned diagonally in a direction this capture leaves
		}

		if possiblePin {
			afterCapture := s.Occupied &^ (bitboard.Squares[from] | bitboard.Squares[capturedPawn])
			if attacks.Rook(kingSq, bitboard.Empty, afterCapture)&enemySliders != bitboard.Empty {
				continue
			}
		}

		s.MoveList = append(s.MoveList, move.New(from, target, piece.Pawn, move.EnPassant))
	}
}

func (s *moveGenState) serializeMoves(from square.Square, targets bitboard.Board) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		tag := move.Quiet
		if s.Enemies.IsSet(to) {
			tag = move.Capture
		}
		s.MoveList = append(s.MoveList, move.New(from, to, s.movingPieceAt(from), tag))
	}
}

func (s *moveGenState) movingPieceAt(from square.Square) piece.Type {
	return s.Position[from].Type()
}

func pawnPushes(pawns bitboard.Board, c piece.Color) bitboard.Board { return pawns.Up(c) }

func pawnAttacksLeft(pawns bitboard.Board, c piece.Color) bitboard.Board {
	if c == piece.White {
		return pawns.Up(c).West()
	}
	return pawns.Up(c).East()
}

func pawnAttacksRight(pawns bitboard.Board, c piece.Color) bitboard.Board {
	if c == piece.White {
		return pawns.Up(c).East()
	}
	return pawns.Up(c).West()
}

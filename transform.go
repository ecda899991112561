package pocketcube

// Each quarter-turn cycles 12 of the 24 facelet positions: the four stickers
// of the turned face plus two stickers on each of the four adjacent faces.
// The cycles are given as (source, destination) index pairs; the sticker at
// srcs[i] moves to dsts[i], all other positions are untouched.
var (
	frontSrcs = [12]int{0, 1, 2, 3, 19, 18, 4, 7, 21, 20, 14, 13}
	frontDsts = [12]int{1, 2, 3, 0, 4, 7, 21, 20, 14, 13, 19, 18}

	rightSrcs = [12]int{4, 5, 6, 7, 18, 17, 8, 11, 22, 21, 2, 1}
	rightDsts = [12]int{5, 6, 7, 4, 8, 11, 22, 21, 2, 1, 18, 17}

	topSrcs = [12]int{16, 17, 18, 19, 4, 5, 8, 9, 12, 13, 0, 1}
	topDsts = [12]int{17, 18, 19, 16, 0, 1, 4, 5, 8, 9, 12, 13}
)

// transforms[m][dst] = src: applying move m writes the sticker at src into
// slot dst. Built once at init and immutable afterwards.
var transforms = buildTransforms()

func buildTransforms() [NumMoves][NumFacelets]int {
	var t [NumMoves][NumFacelets]int
	t[Front] = permutation(frontSrcs, frontDsts)
	t[Right] = permutation(rightSrcs, rightDsts)
	t[Top] = permutation(topSrcs, topDsts)
	t[TopInverse] = invert(t[Top])
	t[RightInverse] = invert(t[Right])
	t[FrontInverse] = invert(t[Front])
	return t
}

// permutation expands a cycle given as (src, dst) pairs into a full
// destination-indexed lookup table over all facelet positions.
func permutation(srcs, dsts [12]int) [NumFacelets]int {
	var p [NumFacelets]int
	for i := range p {
		p[i] = i
	}
	for i := range srcs {
		p[dsts[i]] = srcs[i]
	}
	return p
}

// invert reverses the cycle direction of a permutation table, so that
// invert(p) undoes p exactly.
func invert(p [NumFacelets]int) [NumFacelets]int {
	var inv [NumFacelets]int
	for dst, src := range p {
		inv[src] = dst
	}
	return inv
}

package region

import "github.com/pkg/errors"

// mergeBands combines two wall vectors with a lockstep scanline: at each
// event x (the smaller of the two cursor heads, both advancing on a tie)
// it toggles inR and/or inS for the walls consumed, and appends x to the
// output whenever op(inR, inS) differs from the running inResult. The
// result is strictly increasing by construction; for an op with
// op(false, false) == false, as OR, AND, SUB and XOR are, it is also
// even-length, so no post-processing is needed to establish those two
// invariants. For an op with op(false, false) == true (NAND, NOR) the
// result can have odd length.
//
// rWalls or sWalls may be nil, standing in for a band with no coverage;
// mergeBands runs the same loop regardless and never takes a shortcut
// based on op(false, false), since a caller-supplied Op need not satisfy
// op(false, false) == false.
func mergeBands(rWalls, sWalls []int, op Op) []int {
	var out []int
	i, j := 0, 0
	inR, inS, inResult := false, false, false
	for i < len(rWalls) || j < len(sWalls) {
		haveR := i < len(rWalls)
		haveS := j < len(sWalls)
		var x int
		if haveR && (!haveS || rWalls[i] <= sWalls[j]) {
			x = rWalls[i]
		} else {
			x = sWalls[j]
		}
		if haveR && rWalls[i] == x {
			inR = !inR
			i++
		}
		if haveS && sWalls[j] == x {
			inS = !inS
			j++
		}
		if want := op(inR, inS); want != inResult {
			inResult = want
			out = append(out, x)
		}
	}
	return out
}

// mergeRegions walks a and b's bands with a downward y-scanline, emitting
// one output band per maximal y-interval during which the pair (active
// band of a, active band of b) is constant. Either side may be inactive,
// in which case the corresponding wall vector passed to mergeBands is
// nil.
//
// scanline is tracked explicitly from the [y1, y2) of the most recent
// merge attempt, rather than re-derived from result's last appended
// band, so it stays correct even when an attempted band is empty and
// gets discarded (appendBand on an empty wall vector is a no-op and
// leaves result unchanged).
func mergeRegions(a, b *Region, op Op) (*Region, error) {
	result := Empty()
	na, nb := a.Len(), b.Len()
	if na == 0 && nb == 0 {
		return result, nil
	}
	i, j := 0, 0
	var scanline int
	switch {
	case na > 0 && nb > 0:
		scanline = minInt(a.bandAt(0).Y1, b.bandAt(0).Y1)
	case na > 0:
		scanline = a.bandAt(0).Y1
	default:
		scanline = b.bandAt(0).Y1
	}

	emit := func(y1, y2 int, rWalls, sWalls []int) error {
		if err := result.appendBand(y1, y2, mergeBands(rWalls, sWalls, op)); err != nil {
			return errors.Wrapf(err, "region: merge band [%d, %d)", y1, y2)
		}
		scanline = y2
		return nil
	}

	for i < na && j < nb {
		R, S := a.bandAt(i), b.bandAt(j)
		if R.Y1 <= S.Y1 {
			if scanline < R.Y1 {
				scanline = R.Y1
			}
			switch {
			case R.Y2 <= S.Y1:
				// R ends before S begins.
				if err := emit(scanline, R.Y2, R.Walls(), nil); err != nil {
					return nil, err
				}
				i++
			default:
				if scanline < S.Y1 {
					if err := emit(scanline, S.Y1, R.Walls(), nil); err != nil {
						return nil, err
					}
				}
				if R.Y2 <= S.Y2 {
					if err := emit(S.Y1, R.Y2, R.Walls(), S.Walls()); err != nil {
						return nil, err
					}
					i++
					if R.Y2 == S.Y2 {
						j++
					}
				} else {
					if err := emit(S.Y1, S.Y2, R.Walls(), S.Walls()); err != nil {
						return nil, err
					}
					j++
				}
			}
		} else {
			// Symmetric with A and B swapped.
			if scanline < S.Y1 {
				scanline = S.Y1
			}
			switch {
			case S.Y2 <= R.Y1:
				if err := emit(scanline, S.Y2, nil, S.Walls()); err != nil {
					return nil, err
				}
				j++
			default:
				if scanline < R.Y1 {
					if err := emit(scanline, R.Y1, nil, S.Walls()); err != nil {
						return nil, err
					}
				}
				if S.Y2 <= R.Y2 {
					if err := emit(R.Y1, S.Y2, R.Walls(), S.Walls()); err != nil {
						return nil, err
					}
					j++
					if S.Y2 == R.Y2 {
						i++
					}
				} else {
					if err := emit(R.Y1, R.Y2, R.Walls(), S.Walls()); err != nil {
						return nil, err
					}
					i++
				}
			}
		}
	}

	// Drain: one side exhausted, emit the rest against the empty sentinel.
	for i < na {
		R := a.bandAt(i)
		y1 := maxInt(scanline, R.Y1)
		if err := emit(y1, R.Y2, R.Walls(), nil); err != nil {
			return nil, err
		}
		i++
	}
	for j < nb {
		S := b.bandAt(j)
		y1 := maxInt(scanline, S.Y1)
		if err := emit(y1, S.Y2, nil, S.Walls()); err != nil {
			return nil, err
		}
		j++
	}
	return result, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package region

// Op is a 2-bit Boolean operator: a pure function of (inside-A,
// inside-B) parity bits to a result parity bit. The merge engine in
// merge.go takes an Op as a plain function value and is otherwise
// agnostic to which operator it was given — a caller may define
// additional 2-bit operators without any change to the merge engine. The
// merge yields valid, even-length wall vectors only for operators with
// op(false, false) == false; NAND and NOR do not satisfy this.
type Op func(inR, inS bool) bool

// OR is set union: a ∨ b.
func OR(inR, inS bool) bool { return inR || inS }

// AND is set intersection: a ∧ b.
func AND(inR, inS bool) bool { return inR && inS }

// SUB is set difference A\B: a ∧ ¬b.
func SUB(inR, inS bool) bool { return inR && !inS }

// XOR is symmetric difference: a ⊕ b.
func XOR(inR, inS bool) bool { return inR != inS }

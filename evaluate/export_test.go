package evaluate

// Test bridge for the overflow-checked arithmetic.
var (
	Mul    = mul
	AddMul = addMul
)

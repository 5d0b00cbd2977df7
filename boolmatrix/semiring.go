package boolmatrix

// Standard operator singletons: one package-level BinaryOp/Semiring
// struct literal per (scalar type, operator), in place of a runtime
// type-class dispatch.

// Lor is Boolean logical-or, the additive operator of the (∨,∧) semiring.
var Lor = BinaryOp[bool]{Name: "lor", Apply: func(a, b bool) bool { return a || b }}

// Land is Boolean logical-and, the multiplicative operator of the (∨,∧) semiring.
var Land = BinaryOp[bool]{Name: "land", Apply: func(a, b bool) bool { return a && b }}

// BoolFirst resolves duplicate coordinates in Build by keeping the first
// value seen — sufficient for Boolean matrices since every stored value
// is true.
var BoolFirst = BinaryOp[bool]{Name: "first", Apply: func(a, b bool) bool { return a }}

// BoolIdentity is the Boolean identity unary operator.
var BoolIdentity = UnaryOp[bool]{Name: "identity", Apply: func(a bool) bool { return a }}

// LorLand is the (∨,∧) Boolean semiring used throughout this module's
// reachability computations: Mxm under LorLand is Boolean matrix multiply,
// Kronecker under LorLand is the standard Boolean Kronecker product.
var LorLand = Semiring[bool]{Name: "lor_land", Add: Lor, Mul: Land, Zero: false}

// Uint32Plus and Uint32Times back the (plus,times) semiring used only to
// exercise the generic multiplication contract against a non-Boolean
// scalar type (see matrix_test.go); no higher layer in this module
// instantiates Matrix[uint32] for anything but that test.
var (
	Uint32Plus  = BinaryOp[uint32]{Name: "plus", Apply: func(a, b uint32) uint32 { return a + b }}
	Uint32Times = BinaryOp[uint32]{Name: "times", Apply: func(a, b uint32) uint32 { return a * b }}
)

// Uint32PlusTimes is the ordinary (+,×) semiring over uint32.
var Uint32PlusTimes = Semiring[uint32]{Name: "plus_times", Add: Uint32Plus, Mul: Uint32Times, Zero: 0}

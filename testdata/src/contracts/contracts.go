package contracts

//hoare:precond = "x >= 0"
//hoare:postcond = "return * 2 <= x + 1"
func half(x int) int {
	return x / 2
}

//hoare:debug_invariant = "len(s.items) >= 0"
func (s *stack) push(v int) {
	s.items = append(s.items, v)
}

type stack struct {
	items []int
}

//hoare:precondition = "x > 0"
func badName(x int) int { // want `HOA002: UnexpectedContractName: unexpected name in condition: precondition`
	return x
}

//hoare:precond = 42
func badValue(x int) int { // want `HOA001: PredicateNotStringLiteral: unexpected kind of predicate for condition`
	return x
}

//hoare:precond
func noValue(x int) int { // want `HOA000: MalformedContract: unexpected format of condition`
	return x
}

//hoare:postcond = "return > 0"
type thing struct{} // want `HOA010: UnsupportedTarget: Postcondition on non-function item`

type counter interface {
	//hoare:invariant = "true"
	count() int // want `HOA011: BodylessDeclaration: Invariant on interface method without body`
}

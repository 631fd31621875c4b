package markup

// MaxDepth is the capacity of the frame stack: the default frame plus
// four nesting levels.
const MaxDepth = 5

// stack is a fixed-capacity frame stack. Its bottom slot always holds the
// default frame.
type stack struct {
	frames [MaxDepth]Frame
	len    int
}

func newStack() stack {
	return stack{len: 1}
}

func (s *stack) depth() int {
	return s.len
}

func (s *stack) top() Frame {
	return s.frames[s.len-1]
}

// push reports false when the stack is full.
func (s *stack) push(f Frame) bool {
	if s.len >= MaxDepth {
		return false
	}
	s.frames[s.len] = f
	s.len++
	return true
}

// pop removes n frames. Callers check n < depth first.
func (s *stack) pop(n int) {
	s.len -= n
}

package searcher

import "math"

type ucb1 struct {
	c    float64
	logN float64
}

func newUCB1(c float64, N int) *ucb1 {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &ucb1{c: c, logN: math.Log(float64(N))}
}

func (u ucb1) evaluate(q float64, n int) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCB1 = q/n + c*sqrt(ln(N)/n)
	return q/float64(n) + u.c*math.Sqrt(u.logN/float64(n))
}

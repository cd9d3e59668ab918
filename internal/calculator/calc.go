// Package calculator provides basic arithmetic and number-theory operations.
package calculator

import "errors"

// Sentinel errors for arguments outside a function's domain.
var (
	ErrDivideByZero      = errors.New("Cannot divide by zero")
	ErrNegativeFactorial = errors.New("Factorial not defined for negative numbers")
)

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns a times b.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns a divided by b as a float. It returns ErrDivideByZero
// when b is zero.
func Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return float64(a) / float64(b), nil
}

// Factorial returns n! computed iteratively. Factorial(0) and
// Factorial(1) are both 1. It returns ErrNegativeFactorial when n is
// negative.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeFactorial
	}
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result, nil
}

// Fibonacci returns the first n Fibonacci numbers starting from 0. It
// returns nil when n <= 0.
func Fibonacci(n int) []int {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int{0}
	}
	fib := make([]int, n)
	fib[1] = 1
	for i := 2; i < n; i++ {
		fib[i] = fib[i-1] + fib[i-2]
	}
	return fib
}

// IsPrime reports whether n is prime, using trial division by odd
// numbers up to the square root of n.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// SumOfFactorials returns the sum of the factorials of nums,
// accumulating with Add. It stops at the first negative input and
// returns ErrNegativeFactorial.
func SumOfFactorials(nums []int) (int, error) {
	total := 0
	for _, n := range nums {
		fact, err := Factorial(n)
		if err != nil {
			return 0, err
		}
		total = Add(total, fact)
	}
	return total, nil
}

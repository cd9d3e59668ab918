package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/styles"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every calculator function once and print the results",
	Long: `Run every calculator function once and print the results.

Covers the basic arithmetic operations, factorial, Fibonacci sequence
generation, primality testing, and the sum-of-factorials walkthrough.

Examples:
  # Print the demonstration
  calc demo`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	fmt.Println(styles.RenderHeader("Arithmetic:"))
	fmt.Printf("  5 + 3 = %s\n", styles.RenderResult(strconv.Itoa(calculator.Add(5, 3))))
	fmt.Printf("  10 - 4 = %s\n", styles.RenderResult(strconv.Itoa(calculator.Subtract(10, 4))))
	fmt.Printf("  6 * 7 = %s\n", styles.RenderResult(strconv.Itoa(calculator.Multiply(6, 7))))

	quotient, err := calculator.Divide(20, 4)
	if err != nil {
		return fmt.Errorf("failed to divide: %w", err)
	}
	fmt.Printf("  20 / 4 = %s\n", styles.RenderResult(strconv.FormatFloat(quotient, 'g', -1, 64)))
	fmt.Println()

	fmt.Println(styles.RenderHeader("Number theory:"))
	fact, err := calculator.Factorial(5)
	if err != nil {
		return fmt.Errorf("failed to compute factorial: %w", err)
	}
	fmt.Printf("  5! = %s\n", styles.RenderResult(strconv.Itoa(fact)))
	fmt.Printf("  First 10 Fibonacci: %s\n", styles.RenderResult(joinInts(calculator.Fibonacci(10))))
	fmt.Printf("  Is 17 prime? %s\n", styles.RenderResult(strconv.FormatBool(calculator.IsPrime(17))))
	fmt.Println()

	fib := calculator.Fibonacci(5)
	total, err := calculator.SumOfFactorials(fib)
	if err != nil {
		return fmt.Errorf("failed to sum factorials: %w", err)
	}
	fmt.Println(styles.RenderHeader("Walkthrough:"))
	fmt.Printf("  Sum of factorials of %s = %s\n", joinInts(fib), styles.RenderResult(strconv.Itoa(total)))

	return nil
}

func joinInts(nums []int) string {
	parts := make([]string, 0, len(nums))
	for _, n := range nums {
		parts = append(parts, strconv.Itoa(n))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

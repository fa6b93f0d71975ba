package arith

import "testing"

func BenchmarkEvaluate(b *testing.B) {
	const statement = "((1+38)*4.5-1/2)*(102.12356+7*6/2)"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Evaluate(statement, nil); err != nil {
			b.Fatalf("evaluate: %v", err)
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	const statement = "(1+38)*4.5-1/2+102.12356"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tokenize(statement); err != nil {
			b.Fatalf("tokenize: %v", err)
		}
	}
}

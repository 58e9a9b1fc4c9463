package main

import (
	"encoding/json"
	"fmt"
	"os"

	"sudoku-engine/internal/sudoku/engine"
	"sudoku-engine/internal/sudoku/engine/constraints"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: solve <boarddata.json> <solve|countSolutions|trueCandidates|step|logicalSolve>")
		os.Exit(1)
	}

	path := os.Args[1]
	mode := os.Args[2]

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Could not read %s: %v\n", path, err)
		os.Exit(1)
	}

	var data engine.BoardData
	if err := json.Unmarshal(raw, &data); err != nil {
		fmt.Printf("Invalid board data: %v\n", err)
		os.Exit(1)
	}

	builder := engine.NewConstraintBuilder()
	constraints.RegisterBuiltins(builder)

	switch mode {
	case "solve":
		printJSON(engine.QuerySolve(&data, builder, engine.SolveOptions{}, nil, nil))
	case "countSolutions":
		printJSON(engine.QueryCountSolutions(&data, builder, engine.CountOptions{MaxSolutions: 2}, nil))
	case "trueCandidates":
		printJSON(engine.QueryTrueCandidates(&data, builder, engine.TrueCandidatesOptions{MaxSolutionsPerCandidate: 1}, nil))
	case "step":
		b, err := engine.ApplyBoardData(&data, builder)
		if err != nil {
			fmt.Println("Board is invalid.")
			os.Exit(1)
		}
		printJSON(engine.QueryStep(b, true))
		printJSON(engine.QueryStep(b, false))
	case "logicalSolve":
		b, err := engine.ApplyBoardData(&data, builder)
		if err != nil {
			fmt.Println("Board is invalid.")
			os.Exit(1)
		}
		result := engine.QueryLogicalSolve(b)
		for _, line := range result.Desc {
			fmt.Println(line)
		}
		printJSON(result)
	default:
		fmt.Printf("Unknown mode %q\n", mode)
		os.Exit(1)
	}
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}

//go:build GENERATE_Q32_TESTDATA

package main

import "os"
import "fmt"
import "sort"
import "strings"

import "golang.org/x/sync/errgroup"

import "github.com/tinne26/q32"

// See q32/testdata_generate.go for details.
// Must be generated from base q32 directory, so the testdata
// file is placed at the same level as testdata_generate.go.

type unaryTable struct {
	fn func(q32.Fixed) q32.Fixed
	inputs []float64
}

type binaryTable struct {
	fn func(x, y q32.Fixed) q32.Fixed
	inputs [][2]float64
}

// inputs include the garbage cases (asymptotes, zero divisors, overflows),
// so their silent results are pinned too
var angles = []float64{ -7.5, -3, -1.5, -0.75, -0.1, 0, 0.1, 0.5, 0.75, 1, 1.5, 1.5707963267948966, 2, 3, 4.5, 7.5, 100 }
var hyperbolics = []float64{ -2147483648, -5, -1, -0.5, 0, 0.25, 1, 2, 5 }

var unaryTables = map[string]unaryTable{
	"Sin": { q32.Sin, angles },
	"Cos": { q32.Cos, angles },
	"Tan": { q32.Tan, angles },
	"Cot": { q32.Cot, angles },
	"Sec": { q32.Sec, angles },
	"Csc": { q32.Csc, angles },
	"Asin": { q32.Asin, []float64{ -1.5, -1, -0.9, -0.5, -0.25, 0, 0.25, 0.5, 0.9, 0.999, 1, 1.5 } },
	"Acos": { q32.Acos, []float64{ -1.5, -1, -0.9, -0.5, -0.25, 0, 0.25, 0.5, 0.9, 0.999, 1, 1.5 } },
	"Atan": { q32.Atan, []float64{ -100, -10, -2, -1, -0.5, 0, 0.5, 1, 2, 10, 100 } },
	"Exp": { q32.Exp, []float64{ -20, -5, -1, -0.5, -0.25, 0, 0.25, 0.5, 1, 2.5, 5, 10, 20, 25 } },
	"Log": { q32.Log, []float64{ -1, 0, 0.001, 0.1, 0.5, 1, 2, 2.718281828459045, 10, 1000, 1e6 } },
	"Sqrt": { q32.Sqrt, []float64{ -4, 0, 0.001, 0.25, 0.5, 1, 2, 3, 4, 10, 1e6, 2e9 } },
	"Inv": { q32.Fixed.Inv, []float64{ -1000, -3, -0.5, 0, 0.001, 0.5, 1, 3, 7, 1000 } },
	"Cosh": { q32.Cosh, hyperbolics },
	"Sinh": { q32.Sinh, hyperbolics },
	"Tanh": { q32.Tanh, hyperbolics },
	"Sech": { q32.Sech, hyperbolics },
	"Csch": { q32.Csch, hyperbolics },
	"Coth": { q32.Coth, hyperbolics },
}

var binaryTables = map[string]binaryTable{
	"Mul": { q32.Fixed.Mul, [][2]float64{ {3, 4}, {-3, 4}, {-1.5, -2.25}, {0.1, 0.2}, {1e4, 1e4}, {-7.25, 0.001} } },
	"Div": { q32.Fixed.Div, [][2]float64{ {1, 3}, {10, 4}, {-7, 2}, {1, 7}, {22, 7}, {1, 0} } },
	"Pow": { q32.Pow, [][2]float64{ {2, 10}, {9, 0.5}, {0, 0}, {5, 0}, {2, -1}, {10, 0.3}, {0.5, 3}, {2.718281828459045, 2} } },
	"Atan2": { q32.Atan2, [][2]float64{ {1, 1}, {1, -1}, {-1, -1}, {-1, 1}, {0, 1}, {0, -1}, {1, 0}, {-1, 0}, {0, 0}, {3, 0.5}, {-0.5, -4} } },
}

func main() {
	const filename = "testdata_golden_test.go"
	fmt.Print("Generating '" + filename + "'... ")

	// compute each table concurrently
	names := make([]string, 0, len(unaryTables) + len(binaryTables))
	for name := range unaryTables  { names = append(names, name) }
	for name := range binaryTables { names = append(names, name) }
	sort.Strings(names)

	tables := make([]string, len(names))
	var group errgroup.Group
	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			var err error
			tables[i], err = encodeTable(name)
			return err
		})
	}
	err := group.Wait()
	if err != nil { fatal(err) }

	// write all the data
	var contents strings.Builder
	contents.WriteString("// Code generated by test/generate/golden; DO NOT EDIT.\n\n")
	contents.WriteString("package q32\n\nfunc init() {\n")
	for _, table := range tables {
		contents.WriteString(table)
	}
	contents.WriteString("}\n")

	file, err := os.Create(filename)
	if err != nil { fatal(err) }
	_, err = file.WriteString(contents.String())
	if err != nil {
		_ = os.Remove(filename)
		fatal(err)
	}
	err = file.Close()
	if err != nil { fatal(err) }

	fmt.Print("OK\n")
}

func encodeTable(name string) (string, error) {
	var out strings.Builder
	out.WriteString("\tgoldenData[\"" + name + "\"] = []goldenCase{\n")
	if table, found := unaryTables[name]; found {
		for _, input := range table.inputs {
			x := q32.FromFloat64(input)
			writeCase(&out, x, 0, table.fn(x))
		}
	} else if table, found := binaryTables[name]; found {
		for _, input := range table.inputs {
			x, y := q32.FromFloat64(input[0]), q32.FromFloat64(input[1])
			writeCase(&out, x, y, table.fn(x, y))
		}
	} else {
		return "", fmt.Errorf("golden table '%s' not found", name)
	}
	out.WriteString("\t}\n")
	return out.String(), nil
}

func writeCase(out *strings.Builder, x, y, result q32.Fixed) {
	out.WriteString("\t\t{" + hex(x) + ", " + hex(y) + ", " + hex(result) + "},\n")
}

func hex(value q32.Fixed) string {
	if value == q32.MinFixed { return "MinFixed" }
	if value < 0 { return fmt.Sprintf("-0x%016X", uint64(-value)) }
	return fmt.Sprintf("0x%016X", uint64(value))
}

func fatal(err error) {
	fmt.Fprint(os.Stderr, "\nERROR: " + err.Error() + "\n")
	os.Exit(1)
}

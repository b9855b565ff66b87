package language_features

import (
	"testing"

	"github.com/vk/fscheck/internal/testutil"
)

// Test for: every statement form accepted end to end
func TestLanguageFeatures_ValidPrograms(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "empty program", src: "{}"},
		{
			name: "file operations",
			src: `{
				var origem = "entrada.txt"
				var destino = "saida.txt"
				CopyFile(origem, destino)
				MoveFile(destino, "arquivo/saida.txt")
				RenameFile("arquivo/saida.txt", "arquivo/final.txt")
				DeleteFile(origem)
			}`,
		},
		{
			name: "branches over counted files",
			src: `{
				var total = CountFiles("docs")
				if total > 5 {
					ListFiles("docs")
				} else {
					Wait(100)
				}
			}`,
		},
		{
			name: "loop with arithmetic",
			src: `{
				var i = 0
				for i < CheckSpace("/") - 10 {
					i = i + 1
				}
			}`,
		},
		{
			name: "string concatenation",
			src: `{
				var base = "backup"
				var nome = base + "-" + 2
				if nome != "backup-2" { DeleteFile(nome) }
			}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Act ---
			result := testutil.RunProgram(t, tc.src)

			// --- Assert ---
			testutil.AssertValid(t, result)
		})
	}
}

// Test for: warnings are reported but do not reject the program
func TestLanguageFeatures_UnassignedReadIsOnlyAWarning(t *testing.T) {
	result := testutil.RunProgram(t, `{ ListFiles(docs) }`)

	testutil.AssertValid(t, result)
	testutil.AssertStderrContains(t, result, "Warning: Variável docs lida antes de ser atribuída")
}

// Test for: reading from standard input
func TestLanguageFeatures_Stdin(t *testing.T) {
	result := testutil.RunStdin(t, "{\n  Wait(1)\n}\n")

	testutil.AssertValid(t, result)
}

// SPDX-License-Identifier: EPL-2.0

package sosfeat_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/sosfeat"
	"github.com/ik5/sosfeat/endian"
	"github.com/ik5/sosfeat/feature"
	"github.com/ik5/sosfeat/formats/htk"
)

// Example_loadExperimentBatch writes two feature files and a one-line
// experiment specification, then loads the batch.
func Example_loadExperimentBatch() {
	dir, err := os.MkdirTemp("", "sosfeat-example")
	if err != nil {
		fmt.Printf("tempdir error: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	match := filepath.Join(dir, "match.fea")
	query := filepath.Join(dir, "query.fea.gz")

	m := feature.NewMatrix(13, 300)
	q := feature.NewMatrix(13, 42)
	if err := htk.WriteFile(match, endian.Native, 100000, m); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}
	if err := htk.WriteFile(query, endian.Native, 100000, q); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}

	spec := filepath.Join(dir, "experiments.txt")
	line := fmt.Sprintf("%s %s 1.2 0.5\n", match, query)
	if err := os.WriteFile(spec, []byte(line), 0o644); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}

	batch, err := sosfeat.LoadExperimentBatch(context.Background(), spec)
	if err != nil {
		fmt.Printf("load error: %v\n", err)
		return
	}

	e := batch[0]
	fmt.Printf("match frames %d..%d\n", e.StartFrame, e.StartFrame+e.DurationFrames)
	fmt.Printf("match %d x %d, query %d x %d\n",
		e.MatchData.Dimension(), e.MatchData.Frames(),
		e.QueryData.Dimension(), e.QueryData.Frames())
	// Output:
	// match frames 120..170
	// match 13 x 50, query 13 x 42
}

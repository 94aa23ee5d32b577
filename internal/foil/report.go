package foil

import (
	"fmt"
	"io"
)

// WriteReport prints the emitted/deflected tally and the radius estimate.
func WriteReport(w io.Writer, res Result) error {
	if _, err := fmt.Fprintf(w, "Num alpha particles emitted: %d, num alpha particles deflected: %d\n",
		res.Emitted, res.Deflected); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Nuclei radius: %g\n", res.EstimatedRadius)
	return err
}

func WriteBatchReport(w io.Writer, sum BatchSummary) error {
	_, err := fmt.Fprintf(w,
		"Runs: %d, num alpha particles emitted: %d, num alpha particles deflected: %d\n"+
			"Mean deflection ratio: %g\n"+
			"Nuclei radius: %g (stddev %g)\n",
		sum.Runs, sum.Emitted, sum.Deflected, sum.MeanRatio, sum.MeanRadius, sum.StdDevRadius)
	return err
}

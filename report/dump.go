// dump
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/
package report

import (
	"bufio"
	"fmt"
	"os"

	"github.com/blgolden/iGenDecModel/iGenDairy/animal"
)

// Write one line per animal ever in the herd to file
func DumpRecords(file string, h *animal.Herd) error {
	if file == "" {
		return nil
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "Id BirthDate Stage Parity DaysBorn Weight ConceptionRate Services Calvings CullDay CullCause FirstMilk LaterMilk")
	for _, c := range h.Records {
		cullDay := "-"
		if len(c.CullDays) > 0 {
			cullDay = fmt.Sprint(c.CullDays[0])
		}
		cause := c.CullCause
		if cause == "" || len(c.CullDays) == 0 {
			cause = "-"
		}
		fmt.Fprintf(w, "%5d %6d %-12s %2d %5d %7.1f %6.3f %3d %3d %6s %q %s %s\n",
			c.Id, c.BirthDate, c.Stage, c.Parity, c.DaysBorn, c.Weight, c.ConceptionRate,
			len(c.ServiceDays), len(c.CalvingDays), cullDay, cause,
			milk(c.AnnualizedMilk(0)), milk(c.AnnualizedMilk(1)))
	}
	return w.Flush()
}

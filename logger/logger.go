// logger
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
package logger

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

var OutputMode *string // verbose, table or quiet
var User *string       // name of this user running this run
var Seed *int64        // Random number generator seed

// Name of the log file for this run's seed - e.g. log.iGenDairy.1234
func LogFileName() string {
	var seed int64
	if Seed != nil {
		seed = *Seed
	}
	return "log.iGenDairy." + strconv.FormatInt(seed, 10)
}

// Is the run printing progress
func Verbose() bool {
	return OutputMode != nil && *OutputMode == "verbose"
}

func LogWriter(message string) {
	f, err := os.OpenFile(LogFileName(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Println(err)
		return
	}
	defer f.Close()

	prefix := "iGenDairy "
	if User != nil && *User != "" {
		prefix += *User + " "
	}
	logger := log.New(f, prefix, log.LstdFlags)
	logger.Println(message)
}

func LogWriterf(format string, args ...interface{}) {
	LogWriter(fmt.Sprintf(format, args...))
}

func LogWriterFatal(message string) {
	LogWriter(message)

	if Verbose() {
		fmt.Println(message)
	}
	os.Exit(1)
}

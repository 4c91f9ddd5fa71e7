package main

import "github.com/xgx-io/xgx-report/cmd/xgxreport/cmd"

func main() {
	cmd.Execute()
}

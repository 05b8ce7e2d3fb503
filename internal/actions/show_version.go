package actions

import "io"

func ShowVersion(out io.Writer) error {
	return showVersion(defaultDeps(out))
}

func showVersion(deps actionDependencies) error {
	_, _ = deps.Printf("botcmd version %v\n", deps.Version())
	return nil
}

package fork

type ProcessOpt = func(p *Process)

// WithEnv adds KEY=VALUE environment variables to the process
func WithEnv(env ...string) ProcessOpt {
	return func(p *Process) {
		p.cmd.Env = append(p.cmd.Env, env...)
	}
}

// WithArgs appends command line arguments to the process
func WithArgs(args ...string) ProcessOpt {
	return func(p *Process) {
		p.cmd.Args = append(p.cmd.Args, args...)
	}
}

// WithDir sets the working directory of the process
func WithDir(dir string) ProcessOpt {
	return func(p *Process) {
		p.cmd.Dir = dir
	}
}

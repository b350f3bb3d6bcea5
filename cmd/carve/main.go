package main

import (
	"os"
	"path/filepath"
	"time"

	fmt "github.com/jhunt/go-ansi"
	"github.com/jhunt/go-cli"
	env "github.com/jhunt/go-envirotron"
	"github.com/jhunt/go-log"
	"github.com/mattn/go-isatty"
	"github.com/pborman/uuid"

	"github.com/carveproject/carve/disk"
	"github.com/carveproject/carve/layout"
	"github.com/carveproject/carve/plan"
	"github.com/carveproject/carve/tui"
)

var Version = "(development)"

var opts struct {
	Help    bool   `cli:"-h, --help"`
	Version bool   `cli:"-v, --version"`
	Debug   bool   `cli:"-D, --debug"   env:"CARVE_DEBUG"`
	Config  string `cli:"-c, --config"  env:"CARVE_CONFIG"`
	LogDir  string `cli:"-L, --log-dir" env:"CARVE_LOG_DIR"`
}

func main() {
	opts.Config = "/etc/carve.yml"
	env.Override(&opts)
	_, args, err := cli.Parse(&opts)
	if err != nil {
		fail(1, "@R{!!! %s}\nUSAGE: carve [-Dhv] [-c /path/to/carve.yml] [-L /path/to/logs]\n", err)
	}
	if len(args) != 0 {
		fail(1, "@R{!!! extra arguments found} (carve is fully interactive and takes none)\n")
	}
	if opts.Help {
		fmt.Printf("USAGE: @G{carve} [OPTIONS]\n\n")
		fmt.Printf("  Interactively partition a block device with a fresh GUID partition\n")
		fmt.Printf("  table and format the resulting partitions.  @R{Destructive!}\n\n")
		fmt.Printf("OPTIONS\n")
		fmt.Printf("  -h, --help      Show this help screen.\n")
		fmt.Printf("  -v, --version   Print the version of carve and exit.\n")
		fmt.Printf("  -D, --debug     Log debug-level detail to the run log.\n")
		fmt.Printf("  -c, --config    Path to the carve configuration file.\n")
		fmt.Printf("                  (defaults to @M{/etc/carve.yml}; missing is fine)\n")
		fmt.Printf("  -L, --log-dir   Where to write the timestamped run log.\n")
		os.Exit(0)
	}
	if opts.Version {
		fmt.Printf("carve %s\n", Version)
		os.Exit(0)
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		fail(1, "@R{!!! carve is an interactive tool, and wants a terminal on standard input}\n")
	}

	config, err := disk.ReadConfig(opts.Config)
	bail(err)
	if opts.LogDir != "" {
		config.LogDir = opts.LogDir
	}
	startLogging(config)

	bail(disk.CheckDependencies(config.CarveDependencies()))

	target := chooseDevice(config)
	builder := buildPlan()

	p, err := builder.Finalize()
	bail(err)

	review(target, p)
	if !tui.Confirm(fmt.Sprintf("Destroy ALL data on %s and apply this plan?", target.Device)) {
		log.Infof("operator declined the plan; nothing was touched")
		fmt.Printf("@Y{Nothing was touched.}\n")
		os.Exit(0)
	}
	log.Infof("operator confirmed the plan for %s", target.Device)

	ops := disk.CmdOperations{Config: config}

	var spinner *tui.Spinner
	step := func(s string) {
		if spinner != nil {
			spinner.Done()
		}
		spinner = tui.Spin(s)
	}
	stop := func() {
		if spinner != nil {
			spinner.Done()
			spinner = nil
		}
	}

	executor := &layout.Executor{Ops: ops, Target: target, OnStep: step}
	err = executor.Execute(p)
	stop()
	bail(err)
	fmt.Printf("@G{partition table written to %s}\n", target.Device)

	formatter := &layout.Formatter{Ops: ops, Target: target, OnStep: step}
	err = formatter.Format(p)
	stop()
	bail(err)

	fmt.Printf("@G{all partitions formatted; %s is ready}\n", target.Device)
	log.Infof("run complete; %s is ready", target.Device)
}

func startLogging(config disk.Config) {
	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		fail(1, "@R{!!! unable to create log directory %s: %s}\n", config.LogDir, err)
	}
	logfile := filepath.Join(config.LogDir, fmt.Sprintf("carve-%s.log", time.Now().Format("20060102-150405")))

	level := "info"
	if opts.Debug {
		level = "debug"
	}
	log.SetupLogging(log.LogConfig{Type: "file", Level: level, File: logfile})
	log.Infof("carve %s starting up (run id %s)", Version, uuid.New())
	fmt.Printf("@W{carve} %s (logging to @M{%s})\n\n", Version, logfile)
}

func chooseDevice(config disk.Config) disk.Target {
	devices, err := disk.Devices(config)
	bail(err)
	if len(devices) == 0 {
		fail(1, "@R{!!! no eligible block devices found} (the system disk is never offered)\n")
	}

	t := tui.NewTable("Device", "Size", "Type")
	for _, d := range devices {
		t.Row(d, d.Name, d.Size, d.Type)
	}

	picked := tui.Menu("The following block devices are available:", &t, "Partition which device?")
	if picked == nil {
		os.Exit(0)
	}
	device := picked.(disk.BlockDevice)
	log.Infof("operator selected %s (%s)", device.Name, device.Size)

	mounts, err := disk.MountedUnder(device.Name)
	bail(err)
	if len(mounts) > 0 {
		fmt.Fprintf(os.Stderr, "@R{!!! %s is in use:}\n", device.Name)
		for _, m := range mounts {
			fmt.Fprintf(os.Stderr, "      %s\n", m)
		}
		fail(1, "@R{!!! unmount everything on %s before carving it up}\n", device.Name)
	}

	return disk.Target{Device: device.Name}
}

func buildPlan() *plan.Builder {
	builder := plan.NewBuilder()

	size := askSize("EFI partition size", "e.g. 512M", false)
	bail(builder.AddEFI(size))
	log.Infof("planned EFI partition: %s", size)

	size = askSize("swap partition size", "e.g. 8G", false)
	bail(builder.AddSwap(size))
	log.Infof("planned swap partition: %s", size)

	size = askSize("root partition size", "blank to use the rest of the disk", true)
	fs := askFilesystem("root")
	bail(builder.AddRoot(size, fs))
	log.Infof("planned root partition: %s, %s", size, fs)

	if size.Remaining {
		return builder
	}

	if tui.Confirm("Create a separate home partition?") {
		size = askSize("home partition size", "blank to use the rest of the disk", true)
		fs = askFilesystem("home")
		bail(builder.AddHome(size, fs))
		log.Infof("planned home partition: %s, %s", size, fs)
		if size.Remaining {
			return builder
		}
	}

	for tui.Confirm("Add a custom partition?") {
		v, err := tui.Ask("Mount point for this partition", "e.g. /srv", tui.AnswerIsRequired)
		bail(err)
		name := v.(string)

		size = askSize("partition size", "blank to use the rest of the disk", true)
		fs = askFilesystem(name)
		bail(builder.AddCustom(name, size, fs))
		log.Infof("planned custom partition %s: %s, %s", name, size, fs)
		if size.Remaining {
			break
		}
	}

	return builder
}

func askSize(label, hint string, allowRemaining bool) plan.Size {
	v, err := tui.Ask(label, hint, func(value string) (interface{}, error) {
		return plan.ParseSize(value, allowRemaining)
	})
	bail(err)
	size := v.(plan.Size)
	log.Debugf("prompt: %s -> %s", label, size)
	return size
}

func askFilesystem(what string) plan.Filesystem {
	t := tui.NewTable("Filesystem")
	for _, fs := range []plan.Filesystem{plan.Ext4, plan.XFS, plan.Btrfs, plan.NTFS, plan.ExFAT} {
		t.Row(fs, string(fs))
	}

	picked := tui.Menu(
		fmt.Sprintf("Choose a filesystem for @W{%s}:", what),
		&t, "Which filesystem?")
	if picked == nil {
		os.Exit(0)
	}
	return picked.(plan.Filesystem)
}

func review(target disk.Target, p *plan.Plan) {
	r := tui.NewReport()
	r.Add("Device", target.Device)
	r.Break()
	for _, spec := range p.Specs() {
		r.Add(
			fmt.Sprintf("Partition %d", spec.Index),
			fmt.Sprintf("%-8s %-10s %s  (%s)",
				spec.Label(), spec.Size.String(), spec.Filesystem, target.Partition(spec.Index)))
	}

	fmt.Printf("\n")
	r.Output(os.Stdout)
	fmt.Printf("\n")

	for _, spec := range p.Specs() {
		log.Infof("plan: partition %d: %s %s %s -> %s",
			spec.Index, spec.Label(), spec.Size, spec.Filesystem, target.Partition(spec.Index))
	}
}

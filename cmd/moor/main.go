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
	"github.com/carveproject/carve/mount"
	"github.com/carveproject/carve/tui"
)

var Version = "(development)"

var opts struct {
	Help    bool   `cli:"-h, --help"`
	Version bool   `cli:"-v, --version"`
	Debug   bool   `cli:"-D, --debug"   env:"MOOR_DEBUG"`
	Config  string `cli:"-c, --config"  env:"CARVE_CONFIG"`
	LogDir  string `cli:"-L, --log-dir" env:"CARVE_LOG_DIR"`
}

func main() {
	opts.Config = "/etc/carve.yml"
	env.Override(&opts)
	_, args, err := cli.Parse(&opts)
	if err != nil {
		fail(1, "@R{!!! %s}\nUSAGE: moor [-Dhv] [-c /path/to/carve.yml] [-L /path/to/logs]\n", err)
	}
	if len(args) != 0 {
		fail(1, "@R{!!! extra arguments found} (moor is fully interactive and takes none)\n")
	}
	if opts.Help {
		fmt.Printf("USAGE: @G{moor} [OPTIONS]\n\n")
		fmt.Printf("  Activate swap and mount freshly carved partitions (root, EFI, and\n")
		fmt.Printf("  any custom partitions) under a target root directory.\n\n")
		fmt.Printf("OPTIONS\n")
		fmt.Printf("  -h, --help      Show this help screen.\n")
		fmt.Printf("  -v, --version   Print the version of moor and exit.\n")
		fmt.Printf("  -D, --debug     Log debug-level detail to the run log.\n")
		fmt.Printf("  -c, --config    Path to the carve configuration file.\n")
		fmt.Printf("  -L, --log-dir   Where to write the timestamped run log.\n")
		os.Exit(0)
	}
	if opts.Version {
		fmt.Printf("moor %s\n", Version)
		os.Exit(0)
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		fail(1, "@R{!!! moor is an interactive tool, and wants a terminal on standard input}\n")
	}
	if os.Geteuid() != 0 {
		bail(mount.PrivilegeError{})
	}

	config, err := disk.ReadConfig(opts.Config)
	bail(err)
	if opts.LogDir != "" {
		config.LogDir = opts.LogDir
	}
	startLogging(config)

	bail(disk.CheckDependencies(config.MoorDependencies()))

	req := buildRequest()
	review(req)
	if !tui.Confirm("Activate swap and mount everything as shown?") {
		log.Infof("operator declined; nothing was mounted")
		fmt.Printf("@Y{Nothing was mounted.}\n")
		os.Exit(0)
	}

	sequencer := &mount.Sequencer{Ops: disk.CmdOperations{Config: config}}
	bail(sequencer.Mount(req))

	fmt.Printf("@G{everything is mounted under %s}\n", req.TargetRoot)
	log.Infof("run complete; %s is assembled", req.TargetRoot)
}

func startLogging(config disk.Config) {
	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		fail(1, "@R{!!! unable to create log directory %s: %s}\n", config.LogDir, err)
	}
	logfile := filepath.Join(config.LogDir, fmt.Sprintf("moor-%s.log", time.Now().Format("20060102-150405")))

	level := "info"
	if opts.Debug {
		level = "debug"
	}
	log.SetupLogging(log.LogConfig{Type: "file", Level: level, File: logfile})
	log.Infof("moor %s starting up (run id %s)", Version, uuid.New())
	fmt.Printf("@W{moor} %s (logging to @M{%s})\n\n", Version, logfile)
}

func buildRequest() mount.Request {
	req := mount.Request{
		SwapDevice: askDevice("Swap partition device"),
		RootDevice: askDevice("Root partition device"),
		EFIDevice:  askDevice("EFI partition device"),
		TargetRoot: askTargetRoot(),
	}

	for tui.Confirm("Mount a custom partition as well?") {
		device := askDevice("Custom partition device")
		v, err := tui.Ask("Mount point (relative to the target root)", "e.g. /home", tui.AnswerIsRequired)
		bail(err)
		req.Customs = append(req.Customs, mount.CustomMount{
			Device: device,
			Point:  v.(string),
		})
	}

	return req
}

func askDevice(label string) string {
	v, err := tui.Ask(label, "e.g. /dev/sda2", func(value string) (interface{}, error) {
		if value == "" {
			return nil, fmt.Errorf("a device path is required")
		}
		fi, err := os.Stat(value)
		if err != nil {
			return nil, err
		}
		if fi.Mode()&os.ModeDevice == 0 {
			return nil, fmt.Errorf("%s is not a device", value)
		}
		return value, nil
	})
	bail(err)
	log.Infof("prompt: %s -> %s", label, v.(string))
	return v.(string)
}

func askTargetRoot() string {
	v, err := tui.Ask("Target root directory", "blank for /mnt", func(value string) (interface{}, error) {
		if value == "" {
			return "/mnt", nil
		}
		if !filepath.IsAbs(value) {
			return nil, fmt.Errorf("the target root must be an absolute path")
		}
		return filepath.Clean(value), nil
	})
	bail(err)
	return v.(string)
}

func review(req mount.Request) {
	r := tui.NewReport()
	r.Add("Swap", req.SwapDevice)
	r.Add("Root", fmt.Sprintf("%s at %s", req.RootDevice, req.TargetRoot))
	r.Add("EFI", fmt.Sprintf("%s at %s", req.EFIDevice, req.EFIPoint()))
	for _, custom := range req.Customs {
		r.Add("Custom", fmt.Sprintf("%s at %s", custom.Device, req.CustomPoint(custom)))
	}

	fmt.Printf("\n")
	r.Output(os.Stdout)
	fmt.Printf("\n")

	log.Infof("request: swap on %s, root %s at %s, efi %s", req.SwapDevice, req.RootDevice, req.TargetRoot, req.EFIDevice)
	for _, custom := range req.Customs {
		log.Infof("request: custom %s at %s", custom.Device, req.CustomPoint(custom))
	}
}

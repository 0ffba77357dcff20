// pxshot 命令行工具: 抓取网页截图、查询账户用量
//
//	pxshot capture -url https://example.com -o shot.png
//	pxshot store -url https://example.com -full-page
//	pxshot usage
//
// API 密钥来自 ~/.config/pxshot/config.toml 或环境变量 PXSHOT_API_KEY。
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/uniyakcom/pxshot"
	"github.com/uniyakcom/pxshot/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	flag.Usage = usageText
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := newClient(*configPath)
	if err != nil {
		return fail(err)
	}

	switch args[0] {
	case "capture":
		err = runCapture(ctx, client, args[1:], false)
	case "store":
		err = runCapture(ctx, client, args[1:], true)
	case "usage":
		err = runUsage(ctx, client)
	default:
		fmt.Fprintf(os.Stderr, "pxshot: unknown command %q\n\n", args[0])
		flag.Usage()
		return 2
	}
	if err != nil {
		return fail(err)
	}
	return 0
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("pxshot:"), err)
	return 1
}

func usageText() {
	fmt.Fprintf(os.Stderr, `usage: pxshot [-config path] <command> [flags]

commands:
  capture   capture a screenshot of a URL
  store     capture and store server-side, print the stored URL
  usage     show account usage for the current billing period

capture flags:
  -url string        page to capture (required)
  -o string          output file (default "screenshot.<format>")
  -format string     png, jpeg or webp (default "png")
  -quality int       jpeg/webp quality 1-100
  -width int         viewport width
  -height int        viewport height
  -full-page         capture the full scrollable page
  -wait string       load, domcontentloaded or networkidle
  -selector string   CSS selector to wait for
  -block-ads         block ads and trackers
  -store             store server-side and print the URL
`)
}

func newClient(configPath string) (*pxshot.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key: set api_key in the config file or PXSHOT_API_KEY")
	}
	return pxshot.NewWithConfig(pxshot.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Retry:   &pxshot.RetryConfig{},
	})
}

func runCapture(ctx context.Context, client *pxshot.Client, args []string, forceStore bool) error {
	fs := flag.NewFlagSet("capture", flag.ExitOnError)
	url := fs.String("url", "", "page to capture")
	out := fs.String("o", "", "output file")
	format := fs.String("format", "png", "image format")
	quality := fs.Int("quality", 0, "jpeg/webp quality")
	width := fs.Int("width", 0, "viewport width")
	height := fs.Int("height", 0, "viewport height")
	fullPage := fs.Bool("full-page", false, "capture the full page")
	wait := fs.String("wait", "load", "wait condition")
	selector := fs.String("selector", "", "CSS selector to wait for")
	blockAds := fs.Bool("block-ads", false, "block ads and trackers")
	store := fs.Bool("store", false, "store server-side")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *url == "" {
		return fmt.Errorf("capture: -url is required")
	}

	opts := &pxshot.ScreenshotOptions{
		URL:             *url,
		Quality:         *quality,
		Width:           *width,
		Height:          *height,
		FullPage:        *fullPage,
		WaitForSelector: *selector,
		BlockAds:        *blockAds,
		Store:           *store || forceStore,
	}
	switch *format {
	case "png":
		opts.Format = pxshot.FormatPNG
	case "jpeg", "jpg":
		opts.Format = pxshot.FormatJPEG
	case "webp":
		opts.Format = pxshot.FormatWebP
	default:
		return fmt.Errorf("capture: unknown format %q", *format)
	}
	switch *wait {
	case "load":
		opts.WaitUntil = pxshot.WaitLoad
	case "domcontentloaded":
		opts.WaitUntil = pxshot.WaitDOMContentLoaded
	case "networkidle":
		opts.WaitUntil = pxshot.WaitNetworkIdle
	default:
		return fmt.Errorf("capture: unknown wait condition %q", *wait)
	}

	res, err := client.Screenshot(ctx, opts)
	if err != nil {
		return err
	}

	if res.Stored != nil {
		fmt.Printf("%s %s\n", color.GreenString("stored:"), res.Stored.URL)
		if res.Stored.SizeBytes > 0 {
			fmt.Printf("  %dx%d, %s, expires %s\n",
				res.Stored.Width, res.Stored.Height,
				humanize.Bytes(uint64(res.Stored.SizeBytes)), res.Stored.ExpiresAt)
		}
		return nil
	}

	path := *out
	if path == "" {
		path = "screenshot." + opts.Format.String()
	}
	if err := os.WriteFile(path, res.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("%s %s (%s)\n", color.GreenString("saved:"), path, humanize.Bytes(uint64(len(res.Data))))
	return nil
}

func runUsage(ctx context.Context, client *pxshot.Client) error {
	u, err := client.Usage(ctx)
	if err != nil {
		return err
	}
	bold := color.New(color.Bold)
	bold.Println("screenshots")
	fmt.Printf("  %s / %s\n", humanize.Comma(int64(u.ScreenshotsUsed)), humanize.Comma(int64(u.ScreenshotsLimit)))
	bold.Println("storage")
	fmt.Printf("  %s / %s\n", humanize.Bytes(uint64(u.StorageUsedBytes)), humanize.Bytes(uint64(u.StorageLimitBytes)))
	if u.PeriodStart != "" {
		bold.Println("period")
		fmt.Printf("  %s to %s\n", u.PeriodStart, u.PeriodEnd)
	}
	return nil
}

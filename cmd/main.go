package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"readaloud/internal/cli/scheme/colours"
	"readaloud/internal/config"
	"readaloud/internal/extract"
	"readaloud/internal/speak"
	"readaloud/internal/speech"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	config.SetDefaults()

	rootCmd := &cobra.Command{
		Use:   "readaloud",
		Short: "Read documents aloud through a speech engine",
		Long: `readaloud hands text to an external speech engine and keeps
hyperlinks from being spelled out letter by letter. It can speak a raw
file, or carve out the part worth hearing: an article body without its
headers, a document past its banner, or the current page.`,
		Run: func(cmd *cobra.Command, args []string) {
			showWelcome()
		},
	}

	speakCmd := &cobra.Command{
		Use:   "speak [file]",
		Short: "Speak a file or stdin",
		Long:  "Read the given file (or stdin) aloud, optionally extracting by document mode first",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSpeak,
	}
	speakCmd.Flags().StringP("mode", "m", "", "Document mode: article, document, page (default: speak the whole text)")
	speakCmd.Flags().IntP("speed", "s", 0, "Engine speed (espeak words per minute)")
	speakCmd.Flags().BoolP("yes", "y", false, "Replace an already-running speech process without asking")

	rootCmd.AddCommand(speakCmd)

	if err := rootCmd.Execute(); err != nil {
		colours.Error.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showWelcome() {
	fmt.Println()
	colours.Title.Println("readaloud")
	fmt.Println()
	colours.Info.Println("Available commands:")
	fmt.Println("  • readaloud speak <file>          - Speak a file")
	fmt.Println("  • readaloud speak -m article ...  - Skip headers and trailing metadata")
	fmt.Println("  • cat notes.txt | readaloud speak - Speak stdin")
}

func runSpeak(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	enginePath := cfg.Engine
	if enginePath == "" {
		path, err := speech.FindEngine()
		if err != nil {
			return err
		}
		enginePath = path
	}

	speed, _ := cmd.Flags().GetInt("speed")
	if speed <= 0 {
		speed = cfg.Speed
	}
	yes, _ := cmd.Flags().GetBool("yes")

	interactive := len(args) > 0

	var data []byte
	var err error
	if interactive {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	ctl := speech.New(speech.Config{
		EnginePath: enginePath,
		Confirm:    confirmReplace(yes, interactive),
	})
	svc := speak.NewService(extract.NewRegistry(), ctl)

	mode, _ := cmd.Flags().GetString("mode")
	var src speak.Source = speak.Text(string(data))
	if mode != "" {
		src = speak.Document{Context: mode, View: fileView{content: string(data)}}
	}

	if err := svc.Speak(src, speed); err != nil {
		return err
	}
	colours.Success.Println("Speaking...")

	// Kill the engine on Ctrl+C rather than leaving it talking.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		ctl.Terminate(true)
		fmt.Println()
		os.Exit(0)
	}()

	if !interactive {
		// Stdin carried the text, so there is no terminal to take
		// controls from.
		waitIdle(ctl)
		return nil
	}
	return controlLoop(ctl)
}

// waitIdle blocks until the engine process is gone.
func waitIdle(ctl *speech.Controller) {
	for ctl.State() != speech.StateIdle {
		time.Sleep(200 * time.Millisecond)
	}
}

// confirmReplace resolves spawn conflicts at the terminal, or always
// says yes when --yes was given or no terminal is available.
func confirmReplace(yes, interactive bool) speech.ConfirmFunc {
	if yes || !interactive {
		return func() bool { return true }
	}
	return func() bool {
		colours.Prompt.Print("A speech process is already running. Replace it? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

// fileView adapts a loaded file to the extractor's View. A flat file
// has no selection, and its "page" is the whole of it.
type fileView struct {
	content string
}

func (f fileView) Body() (string, error) {
	return f.content, nil
}

func (f fileView) Selection() (string, error) {
	return "", extract.ErrNoActiveSelection
}

func (f fileView) PageText() (string, error) {
	return f.content, nil
}

// Configuration management with Viper
func init() {
	viper.SetConfigName("readaloud")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.readaloud")
	viper.AddConfigPath(".")

	viper.ReadInConfig()
}

// Command console runs one conversation locally from audio files.
// Files are relayed in order, speakers alternate on every successful step.
//
//	console -a Hindi -b French hello.wav bonjour.mp3
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	"voice-relay/domain"
	"voice-relay/infrastructure/audio"
	"voice-relay/infrastructure/speech"
	"voice-relay/services"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	langA := flag.String("a", "English", "Language spoken by participant A")
	langB := flag.String("b", "French", "Language spoken by participant B")
	flag.Parse()
	if flag.NArg() == 0 {
		return fmt.Errorf("usage: console -a <language> -b <language> <file>...")
	}

	_ = godotenv.Load()
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)
	languages := domain.NewLanguageRegistry(domain.DefaultLanguages)

	codeA, err := languages.Resolve(*langA)
	if err != nil {
		return err
	}
	codeB, err := languages.Resolve(*langB)
	if err != nil {
		return err
	}

	p, err := speech.SelectProviders(cfg.providers(), languages)
	if err != nil {
		return err
	}
	session, err := services.NewConversationService("console", log, languages,
		p.Recognizer, p.Translator, p.Synthesizer, codeA, codeB,
		services.WithCaptureTimeout(cfg.CaptureTimeout))
	if err != nil {
		return err
	}
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer := newPrinter(os.Stdout, cfg.Colours, languages)
	normalizer := audio.NewNormalizer(p.Offline)
	for i, path := range flag.Args() {
		if ctx.Err() != nil {
			break
		}
		state := session.State()
		speaker := state.Speaker()
		data, err := os.ReadFile(path)
		if err != nil {
			printer.failure(speaker, path, err)
			continue
		}
		clip, err := normalizer.Normalize(data, "")
		if err != nil {
			printer.failure(speaker, path, err)
			continue
		}

		start := time.Now()
		result, err := session.RelayStep(ctx, clip)
		if err != nil {
			printer.failure(speaker, path, err)
			continue
		}
		printer.turn(result, len(data), time.Since(start))

		if cfg.OutDir != "" && result.Audio != nil {
			out := filepath.Join(cfg.OutDir, fmt.Sprintf("%04d-%s%s", i, result.Speaker, extensionOf(result.Audio.MimeType)))
			if err := os.WriteFile(out, result.Audio.Data, 0o644); err != nil {
				printer.failure(speaker, out, err)
				continue
			}
			printer.saved(out, len(result.Audio.Data))
		}
	}

	printer.transcript(session.State())
	return nil
}

func extensionOf(mimeType string) string {
	if m := mimetype.Lookup(mimeType); m != nil {
		return m.Extension()
	}
	return ".bin"
}

type printer struct {
	w         io.Writer
	colours   bool
	languages domain.LanguageRegistry
}

func newPrinter(w io.Writer, colours bool, languages domain.LanguageRegistry) printer {
	return printer{w: w, colours: colours, languages: languages}
}

func (p printer) paint(style color.Style, text string) string {
	if !p.colours {
		return text
	}
	return style.Render(text)
}

func (p printer) styleOf(speaker domain.ParticipantID) color.Style {
	if speaker == domain.ParticipantA {
		return color.New(color.FgGreen, color.OpBold)
	}
	return color.New(color.FgCyan, color.OpBold)
}

func (p printer) turn(result domain.RelayResult, inputSize int, took time.Duration) {
	header := fmt.Sprintf("[%s] %s → %s", result.Speaker,
		p.languages.NameOf(result.Entry.SourceLanguage), p.languages.NameOf(result.Entry.TargetLanguage))
	fmt.Fprintf(p.w, "%s  %s in %s\n", p.paint(p.styleOf(result.Speaker), header),
		humanize.Bytes(uint64(inputSize)), took.Round(time.Millisecond))
	fmt.Fprintf(p.w, "    said:       %s\n", result.Spoken)
	fmt.Fprintf(p.w, "    translated: %s\n", result.Translated)
	if result.AudioErr != nil {
		fmt.Fprintf(p.w, "    %s\n", p.paint(color.New(color.FgYellow), "audio: "+result.AudioErr.Error()))
	}
}

func (p printer) failure(speaker domain.Participant, source string, err error) {
	line := fmt.Sprintf("[%s] %s: %v (still %s's turn)", speaker.ID, source, err, speaker.ID)
	fmt.Fprintln(p.w, p.paint(color.New(color.FgRed), line))
}

func (p printer) saved(path string, size int) {
	fmt.Fprintf(p.w, "    audio:      %s (%s)\n", path, humanize.Bytes(uint64(size)))
}

func (p printer) transcript(state domain.ConversationState) {
	fmt.Fprintln(p.w)
	if len(state.Transcript) == 0 {
		fmt.Fprintln(p.w, "Nothing was relayed.")
		return
	}
	table := tablewriter.NewWriter(p.w)
	table.SetHeader([]string{"#", "Speaker", "From", "To", "Spoken", "Translated", "At"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, entry := range state.Transcript {
		table.Append([]string{
			fmt.Sprint(i + 1),
			entry.Speaker.String(),
			p.languages.NameOf(entry.SourceLanguage),
			p.languages.NameOf(entry.TargetLanguage),
			entry.Spoken,
			entry.Translated,
			humanize.Time(entry.At),
		})
	}
	table.Render()
}

// Package parse provides resume parsing orchestration. It coordinates
// loading documents from files or URLs, converting them to text, cleaning
// the text and extracting the summary and work history.
package parse

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/vitae"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of sources parsed at once by ParseAll.
const DefaultConcurrency = 4

// Parser turns resume documents into vitae.Resume records.
type Parser struct {
	// Texts maps each supported format to its byte-to-text converter.
	Texts map[vitae.Format]vitae.TextExtractor

	// Fetcher retrieves URL sources. URL sources are rejected when nil.
	Fetcher     vitae.Fetcher
	RateLimiter vitae.DomainLimiter

	Experience vitae.ExperienceExtractor
	Clean      vitae.CleanMode

	// Duplicates, if set, drops resumes from ParseAll whose cleaned text
	// exactly repeats an earlier source. Filter hits are confirmed before a
	// resume is dropped.
	Duplicates vitae.DuplicateFilter

	Concurrency int
	RetryDelays []time.Duration

	// Logger, if set, receives fetch retry messages.
	Logger LogFunc
}

// Result holds the outcome of a ParseAll operation.
type Result struct {
	// Resumes holds one entry per source, in input order. Failed sources
	// leave a nil entry.
	Resumes    []*vitae.Resume
	Parsed     int
	Failed     int
	Duplicates int
	Bytes      int
}

// ProgressEvent reports progress during a ParseAll operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressDuplicate
	ProgressFinished
)

// ProgressFunc is a callback for reporting parse progress.
type ProgressFunc func(event ProgressEvent)

// IsURL reports whether source names an http(s) resource rather than a file.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load reads source and converts it to raw text. File sources pick their
// format from the extension; URL sources are fetched as HTML.
func (p *Parser) Load(ctx context.Context, source string) (vitae.Format, string, error) {
	if IsURL(source) {
		html, err := p.fetch(ctx, source)
		if err != nil {
			return "", "", err
		}
		text, err := p.extract(vitae.FormatHTML, []byte(html))
		return vitae.FormatHTML, text, err
	}

	format, err := vitae.FormatFromPath(source)
	if err != nil {
		return "", "", err
	}

	data, err := os.ReadFile(source)
	if errors.Is(err, os.ErrNotExist) {
		return "", "", vitae.Errorf(vitae.ENOTFOUND, "file not found: %s", source)
	} else if err != nil {
		return "", "", err
	}

	text, err := p.extract(format, data)
	return format, text, err
}

func (p *Parser) fetch(ctx context.Context, source string) (string, error) {
	if p.Fetcher == nil {
		return "", vitae.Errorf(vitae.EINVALID, "url sources are not supported")
	}

	u, err := url.Parse(source)
	if err != nil || u.Host == "" {
		return "", vitae.Errorf(vitae.EINVALID, "invalid url: %s", source)
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	fetch := func(ctx context.Context, source string) (string, error) {
		if p.RateLimiter != nil {
			if err := p.RateLimiter.Wait(ctx, u.Hostname()); err != nil {
				return "", err
			}
		}
		return p.Fetcher.Fetch(ctx, source)
	}
	return FetchWithRetryDelays(ctx, source, fetch, p.Logger, delays)
}

func (p *Parser) extract(format vitae.Format, data []byte) (string, error) {
	te, ok := p.Texts[format]
	if !ok {
		return "", vitae.Errorf(vitae.EINVALID, "no text extractor for format %q", format)
	}
	return te.ExtractText(data)
}

// ParseText builds a resume from already extracted text: the text is
// cleaned, then the summary and job entries are extracted from it.
func (p *Parser) ParseText(source string, format vitae.Format, text string) *vitae.Resume {
	start := time.Now()

	mode := p.Clean
	if mode == "" {
		mode = vitae.CleanLines
	}
	cleaned := vitae.Clean(text, mode)

	entries := p.Experience.ExtractExperience(cleaned)
	if entries == nil {
		entries = []vitae.JobEntry{}
	}

	return &vitae.Resume{
		Source:     source,
		Format:     format,
		Text:       cleaned,
		Summary:    vitae.ExtractSummary(cleaned),
		Experience: entries,
		Metadata: vitae.ParseMetadata{
			TextLength:        utf8.RuneCountInString(cleaned),
			ExperienceEntries: len(entries),
			CleanMode:         mode,
			ProcessingTime:    time.Since(start),
		},
	}
}

// Parse loads and parses a single source.
func (p *Parser) Parse(ctx context.Context, source string) (*vitae.Resume, error) {
	format, text, err := p.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	return p.ParseText(source, format, text), nil
}

// ParseAll parses sources concurrently. A source that fails is counted and
// reported through progress rather than aborting the batch. When a
// duplicate filter is set, later sources repeating the text of an earlier
// one, in input order, are dropped. The returned error is non-nil only
// when ctx is canceled.
func (p *Parser) ParseAll(ctx context.Context, sources []string, progress ProgressFunc) (*Result, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type outcome struct {
		position int
		resume   *vitae.Resume
		err      error
	}

	total := len(sources)
	resultCh := make(chan outcome, total)
	var completed int

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, source := range sources {
			g.Go(func() error {
				resume, err := p.Parse(gctx, source)
				resultCh <- outcome{position: i, resume: resume, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{Resumes: make([]*vitae.Resume, total)}
	for o := range resultCh {
		completed++
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Source:    sources[o.position],
		}

		if o.err != nil {
			result.Failed++
			event.Type = ProgressFailed
			event.Error = o.err
		} else {
			result.Resumes[o.position] = o.resume
			result.Parsed++
			result.Bytes += len(o.resume.Text)
		}

		if progress != nil {
			progress(event)
		}
	}

	if p.Duplicates != nil {
		seen := make(map[uint64][]string)
		for i, r := range result.Resumes {
			if r == nil {
				continue
			}
			// The filter may report false positives; drop only exact repeats.
			maybe := p.Duplicates.TestAndAdd(r.Text)
			h := xxhash.Sum64String(r.Text)
			if !maybe || !slices.Contains(seen[h], r.Text) {
				seen[h] = append(seen[h], r.Text)
				continue
			}
			result.Resumes[i] = nil
			result.Parsed--
			result.Duplicates++
			result.Bytes -= len(r.Text)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressDuplicate, Completed: total, Total: total, Source: sources[i]})
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

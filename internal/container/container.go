// Package container provides dependency injection for the statement-risk application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/statement-risk/internal/analyzer"
	"fjacquet/statement-risk/internal/batch"
	"fjacquet/statement-risk/internal/common"
	"fjacquet/statement-risk/internal/config"
	"fjacquet/statement-risk/internal/extractor"
	"fjacquet/statement-risk/internal/factory"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/parser"
	"fjacquet/statement-risk/internal/report"
	"fjacquet/statement-risk/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	keywords  *store.KeywordStore
	extractor *extractor.Extractor
	analyzer  *analyzer.Analyzer
	processor *batch.Processor
	generator *report.ReportGenerator
	history   store.HistoryStore

	parsers map[factory.ParserType]parser.FullParser
}

// Option customizes container construction.
type Option func(*options)

type options struct {
	logger  logging.Logger
	history store.HistoryStore
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithHistory replaces the history store built from the configuration.
func WithHistory(h store.HistoryStore) Option {
	return func(o *options) { o.history = h }
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	if len(cfg.CSV.Delimiter) == 1 {
		common.SetDelimiter(rune(cfg.CSV.Delimiter[0]))
	}

	keywordStore := store.NewKeywordStore(cfg.Analysis.KeywordsFile, logger)
	keywords, err := keywordStore.LoadKeywords()
	if err != nil {
		return nil, fmt.Errorf("failed to load keywords: %w", err)
	}

	ext := extractor.New(logger)
	an := analyzer.New(logger,
		analyzer.WithRedFlagKeywords(keywords.RedFlags),
		analyzer.WithHighRiskKeywords(keywords.HighRisk))
	processor := batch.NewProcessor(logger, ext, an, batch.Options{
		Workers:           cfg.Extraction.Workers,
		DefaultEntityName: cfg.Analysis.DefaultEntityName,
	})

	parsers := make(map[factory.ParserType]parser.FullParser, len(factory.ParserTypes))
	for _, pt := range factory.ParserTypes {
		p, err := factory.GetParserWithLogger(pt, logger)
		if err != nil {
			return nil, err
		}
		parsers[pt] = p
	}

	history := o.history
	if history == nil && cfg.History.Enabled {
		history, err = store.OpenBoltHistory(cfg.History.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open history: %w", err)
		}
	}

	logger.Debug("Container initialized successfully",
		logging.F("parsers_count", len(parsers)),
		logging.F(logging.FieldWorkers, cfg.Extraction.Workers),
		logging.F("history_enabled", history != nil))

	return &Container{
		logger:    logger,
		config:    cfg,
		keywords:  keywordStore,
		extractor: ext,
		analyzer:  an,
		processor: processor,
		generator: report.NewReportGenerator(logger),
		history:   history,
		parsers:   parsers,
	}, nil
}

// GetParser returns a parser for the given type.
func (c *Container) GetParser(pt factory.ParserType) (parser.FullParser, error) {
	p, ok := c.parsers[pt]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", pt)
	}
	return p, nil
}

// GetParsers returns a copy of the parser registry.
func (c *Container) GetParsers() map[factory.ParserType]parser.FullParser {
	result := make(map[factory.ParserType]parser.FullParser, len(c.parsers))
	for k, v := range c.parsers {
		result[k] = v
	}
	return result
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetKeywordStore returns the store the keyword overrides were loaded from.
func (c *Container) GetKeywordStore() *store.KeywordStore {
	return c.keywords
}

// GetExtractor returns the table extractor.
func (c *Container) GetExtractor() *extractor.Extractor {
	return c.extractor
}

// GetAnalyzer returns the financial analyzer.
func (c *Container) GetAnalyzer() *analyzer.Analyzer {
	return c.analyzer
}

// GetProcessor returns the batch processor.
func (c *Container) GetProcessor() *batch.Processor {
	return c.processor
}

// GetReportGenerator returns the report renderer.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}

// GetHistory returns the history store, or nil when history is disabled.
func (c *Container) GetHistory() store.HistoryStore {
	return c.history
}

// Close releases the history store, if any.
func (c *Container) Close() error {
	if c.history != nil {
		if err := c.history.Close(); err != nil {
			return fmt.Errorf("failed to close history: %w", err)
		}
	}
	c.logger.Debug("Container closed")
	return nil
}

package batch

import (
	"context"
	"runtime"
	"time"

	"fjacquet/statement-risk/internal/analyzer"
	"fjacquet/statement-risk/internal/extractor"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"

	"golang.org/x/sync/errgroup"
)

// DefaultEntityName is used when no document names its account holder.
const DefaultEntityName = "Unknown Company"

// Options tunes a Processor.
type Options struct {
	// Workers bounds concurrent extractions. Zero means runtime.NumCPU().
	Workers int
	// DefaultEntityName replaces DefaultEntityName when set.
	DefaultEntityName string
}

// Processor extracts every document, merges the results and analyzes them once.
type Processor struct {
	logger            logging.Logger
	extractor         *extractor.Extractor
	analyzer          *analyzer.Analyzer
	workers           int
	defaultEntityName string
}

// NewProcessor wires a Processor. Nil collaborators get defaults built on logger.
func NewProcessor(logger logging.Logger, ext *extractor.Extractor, an *analyzer.Analyzer, opts Options) *Processor {
	logger = logging.OrDefault(logger)
	if ext == nil {
		ext = extractor.New(logger)
	}
	if an == nil {
		an = analyzer.New(logger)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	name := opts.DefaultEntityName
	if name == "" {
		name = DefaultEntityName
	}
	return &Processor{
		logger:            logger.WithField(logging.FieldComponent, "batch"),
		extractor:         ext,
		analyzer:          an,
		workers:           workers,
		defaultEntityName: name,
	}
}

// ExtractAll extracts the documents concurrently and returns one result slice
// per document, in input order. Pre-extracted documents pass through unchanged.
func (p *Processor) ExtractAll(ctx context.Context, docs []models.Document) ([][]models.RawTransaction, error) {
	results := make([][]models.RawTransaction, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			if doc.IsPreExtracted() {
				results[i] = doc.Transactions
			} else {
				results[i] = p.extractor.ExtractTransactions(doc.Text)
			}
			p.logger.Debug("Extracted document",
				logging.F(logging.FieldDocument, doc.Name),
				logging.F(logging.FieldCount, len(results[i])),
				logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Process extracts all documents and builds the report.
func (p *Processor) Process(ctx context.Context, docs []models.Document) (*models.Report, error) {
	p.logger.Info("Processing documents",
		logging.F(logging.FieldCount, len(docs)),
		logging.F(logging.FieldWorkers, p.workers))

	perDocument, err := p.ExtractAll(ctx, docs)
	if err != nil {
		return nil, err
	}

	transactions := Concatenate(perDocument)
	return p.BuildReport(docs, transactions), nil
}

// BuildReport analyzes already-merged transactions. An empty list yields a
// partial_success report with a zeroed summary.
func (p *Processor) BuildReport(docs []models.Document, transactions []models.RawTransaction) *models.Report {
	report := &models.Report{
		EntityName: EntityName(docs, p.defaultEntityName),
		Documents:  len(docs),
		RawText:    RawText(docs),
	}

	if len(transactions) == 0 {
		p.logger.Warn("No transactions extracted", logging.F(logging.FieldCount, len(docs)))
		report.Status = models.StatusPartialSuccess
		report.Message = models.NoTransactionsMessage
		report.Summary = models.EmptySummary()
		report.Transactions = []models.RawTransaction{}
		report.GraphData = []models.GraphPoint{}
		report.Insights = []models.Insight{}
		report.TopPayers = []models.PayerShare{}
		report.RedFlags = []string{}
		return report
	}

	DetectDuplicates(transactions, p.logger)

	sorted := make([]models.RawTransaction, len(transactions))
	copy(sorted, transactions)
	analyzer.SortByDate(sorted)

	analysis := p.analyzer.Analyze(transactions)

	report.Status = models.StatusSuccess
	report.Summary = analysis.Summary
	report.Transactions = sorted
	report.GraphData = analysis.GraphData()
	report.Insights = analysis.Insights
	report.TopPayers = analysis.TopPayers
	report.RedFlags = analysis.RedFlags
	report.Adjustments = analysis.Adjustments

	p.logger.Info("Built report",
		logging.F(logging.FieldStatus, report.Status),
		logging.F(logging.FieldScore, report.Summary.Score),
		logging.F(logging.FieldRiskLevel, string(report.Summary.RiskLevel)),
		logging.F(logging.FieldCount, len(sorted)))
	return report
}

// Package pipeline sequences the contact intake stages: structural
// validation, content validation, canonicalization, duplicate lookup,
// acceptance recording, and the archival write.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/malimedia/campaign-entries/internal/archive"
	"github.com/malimedia/campaign-entries/internal/campaign"
	"github.com/malimedia/campaign-entries/internal/contacts"
	"github.com/malimedia/campaign-entries/internal/disposable"
	"github.com/malimedia/campaign-entries/internal/lead"
)

// timestampLayout is ISO-8601 UTC with microsecond precision, e.g.
// 2016-10-31T14:33:58.152256Z. The same rendered timestamp is shared by
// the contact record and the archival record of one invocation.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Pipeline owns the stage sequencing for one submission. All state is
// per-invocation; the struct itself only holds injected collaborators
// and is safe for concurrent use.
type Pipeline struct {
	contacts   contacts.Store
	archiver   archive.Writer
	classifier *disposable.Classifier
	now        func() time.Time
}

// New creates a pipeline over the given stores and classifier.
func New(store contacts.Store, archiver archive.Writer, classifier *disposable.Classifier) *Pipeline {
	return &Pipeline{
		contacts:   store,
		archiver:   archiver,
		classifier: classifier,
		now:        time.Now,
	}
}

// Process runs one submission through the full pipeline and returns the
// business response. A non-nil error is a fault (store unavailable), not
// a business rejection; business rejections are fail responses with a
// nil error.
//
// Validation failures before the dedup check short-circuit without any
// store mutation and without an archival write. From the dedup check
// onward, every path (accept or duplicate-reject) is archived exactly
// once. An archival write failure is logged but never changes the
// verdict already computed.
func (p *Pipeline) Process(ctx context.Context, sub lead.Submission, camp campaign.Campaign, reqCtx lead.RequestContext) (lead.Response, error) {
	timestamp := p.now().UTC().Format(timestampLayout)

	if missing := missingFields(sub, camp); len(missing) > 0 {
		log.Printf("[pipeline] missing fields for campaign %s: %v", camp.ShortName, missing)
		return lead.MissingFields(missing), nil
	}

	email := sub["email"]
	domain, ok := disposable.Domain(email)
	if !ok {
		log.Printf("[pipeline] malformed email rejected for campaign %s", camp.ShortName)
		return lead.Rejected(lead.ReasonInvalidEmail, email), nil
	}
	if p.classifier.IsDisposable(domain) {
		log.Printf("[pipeline] disposable domain %q rejected for campaign %s", domain, camp.ShortName)
		resp := lead.Rejected("Disposable email address detected: "+strings.TrimSpace(domain), email)
		p.archive(ctx, sub, resp, camp, timestamp, reqCtx)
		return resp, nil
	}

	canonical := Canonicalize(sub)
	email = canonical["email"]

	result, err := p.contacts.Lookup(ctx, email)
	if err != nil {
		return lead.Response{}, fmt.Errorf("duplicate lookup: %w", err)
	}

	var resp lead.Response
	var recordErr error
	if result.Found {
		log.Printf("[pipeline] duplicate email for campaign %s", camp.ShortName)
		resp = lead.Rejected(lead.ReasonDuplicate, email)
	} else {
		log.Printf("[pipeline] accepting %q for campaign %s", email, camp.ShortName)
		recordErr = p.contacts.Record(ctx, email, timestamp)
		resp = lead.Accepted(email)
	}

	// The archival write is the audit trail of record: it proceeds even
	// when the acceptance-record write failed.
	p.archive(ctx, canonical, resp, camp, timestamp, reqCtx)

	if recordErr != nil {
		return lead.Response{}, fmt.Errorf("recording acceptance: %w", recordErr)
	}
	return resp, nil
}

func (p *Pipeline) archive(ctx context.Context, sub lead.Submission, resp lead.Response, camp campaign.Campaign, timestamp string, reqCtx lead.RequestContext) {
	rec := lead.ArchiveRecord{
		Data: sub,
		Lead: resp,
		Campaign: lead.CampaignIdentity{
			ShortName:   camp.ShortName,
			DecimalCode: camp.DecimalCode,
		},
		Meta: lead.ArchiveMeta{
			TimeStamp: timestamp,
			Context:   reqCtx,
			Headers:   reqCtx.Headers,
		},
	}
	if err := p.archiver.Archive(ctx, rec); err != nil {
		log.Printf("[pipeline] archive write failed (verdict unchanged): %v", err)
	}
}

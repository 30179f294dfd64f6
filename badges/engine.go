// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/badgesmith/badgesmith/model"
	"github.com/badgesmith/badgesmith/remote"
)

var (
	ErrNilRemote       = errors.New("a remote store is required")
	ErrOwnerEmpty      = errors.New("store owner is required")
	ErrRepoEmpty       = errors.New("store repository is required")
	ErrBaseURLEmpty    = errors.New("storage base URL is required")
	ErrClassNameEmpty  = errors.New("class name must not be empty")
	ErrNotInitialized  = errors.New("engine has not been initialized")
	ErrInitializedOnce = errors.New("engine is already initialized")
)

// Config is the immutable identity of one badge store: who owns the backing
// repository and where its contents are served publicly. BaseURL is the
// prefix of every absolute URL baked into published documents.
type Config struct {
	Owner   string
	Repo    string
	BaseURL string
}

// EngineConfig contains everything needed to build an Engine.
type EngineConfig struct {
	// Remote is the content repository the store lives in.
	Remote remote.Store

	// Store identifies the badge store.
	Store Config

	// Logger to be used by the engine.
	// (Optional) By default a no op logger will be used.
	Logger *zap.Logger
}

// Engine performs all authoring operations against one badge store. Build it
// with NewEngine, call Initialize once to reconcile remote reality into
// memory, then issue mutations. Mutations must be serialized by the caller;
// the engine does not support concurrent mutation calls racing each other.
type Engine struct {
	store     remote.Store
	config    Config
	state     *State
	logger    *zap.Logger
	getLogger func(context.Context) *zap.Logger

	// injectable for tests
	newID func() (string, error)
	now   func() time.Time
}

// NewEngine validates the config and builds an uninitialized Engine.
func NewEngine(config EngineConfig, getLogger func(context.Context) *zap.Logger) (*Engine, error) {
	if err := validateEngineConfig(&config); err != nil {
		return nil, err
	}
	if getLogger == nil {
		getLogger = sallust.Get
	}
	return &Engine{
		store:     config.Remote,
		config:    config.Store,
		logger:    config.Logger,
		getLogger: getLogger,
		newID:     randomID,
		now:       time.Now,
	}, nil
}

func validateEngineConfig(config *EngineConfig) error {
	if config.Remote == nil {
		return ErrNilRemote
	}
	if config.Store.Owner == "" {
		return ErrOwnerEmpty
	}
	if config.Store.Repo == "" {
		return ErrRepoEmpty
	}
	if config.Store.BaseURL == "" {
		return ErrBaseURLEmpty
	}
	if config.Logger == nil {
		config.Logger = sallust.Default()
	}
	return nil
}

// Initialize discovers the remote topology and the commit history
// concurrently, then reconciles them into the starting State. A structural
// violation aborts initialization: the engine refuses to operate on a store
// it cannot fully trust. Initialize runs once per Engine.
func (e *Engine) Initialize(ctx context.Context) error {
	if e.state != nil {
		return ErrInitializedOnce
	}

	var (
		snapshot Snapshot
		commits  []remote.Commit
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = Discover(gctx, e.store)
		return err
	})
	g.Go(func() error {
		var err error
		commits, err = remote.AllCommits(gctx, e.store)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	classes := Reconcile(commits, snapshot)
	e.state = NewState(snapshot.IssuerPresent, classes)

	e.log(ctx).Info("badge store initialized",
		zap.String("owner", e.config.Owner),
		zap.String("repo", e.config.Repo),
		zap.Bool("issuer", snapshot.IssuerPresent),
		zap.Int("classes", len(classes)))
	return nil
}

// HasIssuer reports whether the issuer has been published.
func (e *Engine) HasIssuer() bool {
	if e.state == nil {
		return false
	}
	return e.state.HasIssuer()
}

// Classes returns the class sequence in creation order.
func (e *Engine) Classes() []ClassRecord {
	if e.state == nil {
		return nil
	}
	return e.state.Classes()
}

// IssuerInput carries the caller-supplied fields of a new issuer.
type IssuerInput struct {
	Name        string
	URL         string
	Description string
	Email       string
	Image       []byte
}

// ClassInput carries the caller-supplied fields of a new class.
type ClassInput struct {
	Name        string
	Description string
	Criteria    string
	Image       []byte
}

// CreateIssuer publishes the issuer: the awarding page first, then the
// issuer document and image as two concurrent independent writes. The local
// issuer flag flips only after every write succeeded. A partial failure can
// leave orphan files remotely; that inconsistency is accepted and a retry is
// permitted, the engine never compensates with deletes.
func (e *Engine) CreateIssuer(ctx context.Context, in IssuerInput) (model.Issuer, error) {
	if e.state == nil {
		return model.Issuer{}, ErrNotInitialized
	}

	doc := model.Issuer{
		Name:        in.Name,
		URL:         normalizeURL(in.URL),
		Description: in.Description,
		Image:       joinURL(e.config.BaseURL, ImageFile),
		Email:       in.Email,
	}
	content, err := marshalDocument(doc)
	if err != nil {
		return model.Issuer{}, err
	}

	// The awarding page write is sequenced strictly before the issuer
	// files: later steps assume it exists, and the commit order it produces
	// is part of the store's audit log.
	if err := e.store.WriteFile(ctx, AwardPageFile, issuerAwardPageCommit(in.Name), []byte(awardPageHTML)); err != nil {
		return model.Issuer{}, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return e.store.WriteFile(gctx, IssuerFile, issuerMetadataCommit(in.Name), content)
	})
	g.Go(func() error {
		return e.store.WriteFile(gctx, ImageFile, issuerImageCommit(in.Name), in.Image)
	})
	if err := g.Wait(); err != nil {
		return model.Issuer{}, err
	}

	e.state.MarkIssuer()
	e.log(ctx).Info("issuer created", zap.String("name", in.Name))
	return doc, nil
}

// CreateClass publishes a new class. The duplicate check runs purely against
// local State before any remote write, so a duplicate costs zero remote
// calls; it is only racy against external writers, which the single-writer
// model accepts. On success the class is appended at the tail of the
// sequence, preserving creation order.
func (e *Engine) CreateClass(ctx context.Context, in ClassInput) (model.Class, error) {
	if e.state == nil {
		return model.Class{}, ErrNotInitialized
	}

	slug := Slug(in.Name)
	if slug == "" {
		return model.Class{}, ErrClassNameEmpty
	}
	if e.state.HasClass(slug) {
		return model.Class{}, ErrClassExists
	}

	doc := model.Class{
		Name:        in.Name,
		Description: in.Description,
		Image:       joinURL(e.config.BaseURL, slug, ImageFile),
		Criteria:    in.Criteria,
		Issuer:      joinURL(e.config.BaseURL, IssuerFile),
	}
	content, err := marshalDocument(doc)
	if err != nil {
		return model.Class{}, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return e.store.WriteFile(gctx, classPath(slug, ClassFile), classMetadataCommit(slug), content)
	})
	g.Go(func() error {
		return e.store.WriteFile(gctx, classPath(slug, ImageFile), classImageCommit(slug), in.Image)
	})
	if err := g.Wait(); err != nil {
		return model.Class{}, err
	}

	if err := e.state.AppendClass(slug); err != nil {
		return model.Class{}, err
	}
	e.log(ctx).Info("class created", zap.String("class", slug))
	return doc, nil
}

// CreateBadge issues one badge of the given class to a recipient. An unknown
// class is an ordinary rejection with zero remote writes. The badge id is
// unique across every class in the store.
func (e *Engine) CreateBadge(ctx context.Context, className, email string) (model.Assertion, error) {
	if e.state == nil {
		return model.Assertion{}, ErrNotInitialized
	}

	slug := Slug(className)
	if !e.state.HasClass(slug) {
		e.log(ctx).Debug("badge rejected, unknown class", zap.String("class", slug))
		return model.Assertion{}, ErrNoSuchClass
	}

	id, err := uniqueID(e.newID, e.state.ContainsBadgeID)
	if err != nil {
		return model.Assertion{}, err
	}

	doc := model.Assertion{
		UID:       id,
		Recipient: model.NewEmailRecipient(email),
		Badge:     joinURL(e.config.BaseURL, slug, ClassFile),
		IssuedOn:  e.now().Unix(),
		Verify:    model.NewHostedVerification(joinURL(e.config.BaseURL, slug, badgeFile(id))),
	}
	content, err := marshalDocument(doc)
	if err != nil {
		return model.Assertion{}, err
	}

	if err := e.store.WriteFile(ctx, classPath(slug, badgeFile(id)), badgeCommit(id, slug), content); err != nil {
		return model.Assertion{}, err
	}

	if err := e.state.AppendBadge(slug, id); err != nil {
		return model.Assertion{}, err
	}
	e.log(ctx).Info("badge created", zap.String("class", slug), zap.String("id", id))
	return doc, nil
}

func (e *Engine) log(ctx context.Context) *zap.Logger {
	l := e.getLogger(ctx)
	if l == nil {
		l = e.logger
	}
	return l
}

// normalizeURL prefixes http:// when the caller omitted a scheme.
func normalizeURL(u string) string {
	if u == "" || strings.Contains(u, "://") {
		return u
	}
	return "http://" + u
}

// marshalDocument renders published documents with the two-space indentation
// every existing store was written with.
func marshalDocument(doc interface{}) ([]byte, error) {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed marshaling document: %w", err)
	}
	return content, nil
}

// awardPageHTML is the static page published at the store root. Hosted badge
// consumers land here when they follow an award link.
const awardPageHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Badge award</title>
</head>
<body>
  <h1>You have been awarded a badge!</h1>
  <p>This repository hosts Open Badges assertions. Use a badge backpack to
  collect your award.</p>
</body>
</html>
`

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-autofill-keeper/internal/autofill"
	"github.com/MKhiriev/go-autofill-keeper/internal/config"
	"github.com/MKhiriev/go-autofill-keeper/internal/gate"
	"github.com/MKhiriev/go-autofill-keeper/internal/logger"
	"github.com/MKhiriev/go-autofill-keeper/internal/parser"
	"github.com/MKhiriev/go-autofill-keeper/internal/store"
	"github.com/MKhiriev/go-autofill-keeper/internal/validators"
	"github.com/MKhiriev/go-autofill-keeper/models"
)

var _ Client = (*App)(nil)

// App runs one invocation of the command.
type App struct {
	cfg         *config.GateConfig
	fieldData   store.FieldDataRepository
	credentials store.CredentialRepository
	parser      *parser.StructureParser
	validator   validators.Validator
	gate        *gate.Gate
	prompt      Prompter
	out         io.Writer
	copyText    func(string) error
	logger      *logger.Logger
}

// NewApp wires the gate to storages and returns an App that prompts through
// prompt and writes the reply as JSON to out.
func NewApp(cfg *config.GateConfig, storages *store.Storages, prompt Prompter, out io.Writer, log *logger.Logger) *App {
	structureParser := parser.NewStructureParser(log)

	return &App{
		cfg:         cfg,
		fieldData:   storages.FieldData,
		credentials: storages.Credentials,
		parser:      structureParser,
		validator:   validators.NewFieldDataValidator(),
		gate:        gate.NewGate(storages.Credentials, structureParser, storages.FieldData, autofill.NewPayloadBuilder(log), log),
		prompt:      prompt,
		out:         out,
		copyText:    clipboard.WriteAll,
		logger:      log,
	}
}

// Run performs, in order and as configured: storing the master password,
// importing records, and authenticating a request for the structure file.
// It returns [ErrNoResult] when the reply is a failure.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	if a.cfg.App.MasterPassword != "" {
		if err := a.credentials.Set(ctx, models.Credential(a.cfg.App.MasterPassword)); err != nil {
			return fmt.Errorf("store master password: %w", err)
		}
	}

	if a.cfg.Request.ImportPath != "" {
		if err := a.importRecords(ctx, a.cfg.Request.ImportPath); err != nil {
			return fmt.Errorf("import records: %w", err)
		}
	}

	if a.cfg.Request.StructurePath == "" {
		return nil
	}

	return a.authenticate(ctx)
}

func (a *App) authenticate(ctx context.Context) error {
	structure, err := readStructure(a.cfg.Request.StructurePath)
	if err != nil {
		return err
	}
	if err = a.validator.Validate(ctx, structure); err != nil {
		return fmt.Errorf("invalid structure %s: %w", a.cfg.Request.StructurePath, err)
	}

	req := models.NewFullResponseRequest(structure)
	if a.cfg.Request.DatasetName != "" {
		req = models.NewSingleDatasetRequest(a.cfg.Request.DatasetName, structure)
	}

	h := a.gate.Open(ctx, req)
	if h.State() == gate.AwaitingInput {
		if err = a.prompt.Run(ctx, h, promptTitle(structure, req)); err != nil {
			a.logger.Err(err).Str("func", "App.authenticate").Msg("prompt stopped")
		}
		// nobody is left to answer the handle
		h.Cancel(ctx)
	}

	reply, err := h.Result(ctx)
	if err != nil {
		return fmt.Errorf("wait for reply: %w", err)
	}

	if err = json.NewEncoder(a.out).Encode(reply); err != nil {
		return fmt.Errorf("write reply: %w", err)
	}

	if !reply.OK() {
		return ErrNoResult
	}

	if a.cfg.Request.CopyToClipboard {
		if err = a.copyPassword(structure, reply); err != nil {
			return fmt.Errorf("copy password: %w", err)
		}
	}

	return nil
}

func (a *App) importRecords(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var records []models.FieldRecord
	if err = json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if err = a.validator.Validate(ctx, records); err != nil {
		return fmt.Errorf("invalid records in %s: %w", path, err)
	}

	for _, record := range records {
		if err = a.fieldData.Save(ctx, record); err != nil {
			return fmt.Errorf("save dataset %q: %w", record.DatasetName, err)
		}
	}

	a.logger.Info().
		Str("func", "App.importRecords").
		Int("records", len(records)).
		Msg("records imported")
	return nil
}

// copyPassword puts the value filled into the first password field of a
// single-dataset reply on the clipboard.
func (a *App) copyPassword(structure *models.Structure, reply models.ReplyDescriptor) error {
	single, ok := reply.Payload().(models.SingleDatasetPayload)
	if !ok {
		return ErrNothingToCopy
	}

	fields, err := a.parser.Parse(structure)
	if err != nil {
		return err
	}

	for _, field := range fields.FieldsForHint(models.HintPassword) {
		if v, ok := single.Dataset.Values[field.ID]; ok && v.Text != nil {
			return a.copyText(*v.Text)
		}
	}

	return ErrNothingToCopy
}

func readStructure(path string) (*models.Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read structure %s: %w", path, err)
	}

	var structure models.Structure
	if err = json.Unmarshal(data, &structure); err != nil {
		return nil, fmt.Errorf("decode structure %s: %w", path, err)
	}

	return &structure, nil
}

func promptTitle(structure *models.Structure, req models.RequestDescriptor) string {
	target := structure.Package
	if target == "" {
		target = "форма"
	}
	if req.DatasetName != nil {
		return fmt.Sprintf("РАЗБЛОКИРОВАТЬ «%s» ДЛЯ %s", *req.DatasetName, target)
	}
	return "РАЗБЛОКИРОВАТЬ АВТОЗАПОЛНЕНИЕ ДЛЯ " + target
}

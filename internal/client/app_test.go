package client

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-autofill-keeper/internal/config"
	"github.com/MKhiriev/go-autofill-keeper/internal/gate"
	"github.com/MKhiriev/go-autofill-keeper/internal/logger"
	"github.com/MKhiriev/go-autofill-keeper/internal/mock"
	"github.com/MKhiriev/go-autofill-keeper/internal/store"
	"github.com/MKhiriev/go-autofill-keeper/internal/tui"
	"github.com/MKhiriev/go-autofill-keeper/internal/validators"
	"github.com/MKhiriev/go-autofill-keeper/models"
)

// scriptedPrompter submits its candidates in order until a terminal step.
type scriptedPrompter struct {
	candidates []models.Credential
	steps      []gate.Step
	titles     []string
}

func (p *scriptedPrompter) Run(ctx context.Context, auth tui.Authenticator, title string) error {
	p.titles = append(p.titles, title)
	for _, c := range p.candidates {
		step, _ := auth.Submit(ctx, c)
		p.steps = append(p.steps, step)
		if step == gate.Terminal {
			return nil
		}
	}
	return nil
}

type replyJSON struct {
	Outcome string          `json:"outcome"`
	Mode    string          `json:"mode"`
	Payload json.RawMessage `json:"payload"`
}

func writeFile(t *testing.T, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func loginStructure() *models.Structure {
	return &models.Structure{
		Package: "com.example.app",
		Windows: []models.ViewNode{{
			ID: 1,
			Children: []models.ViewNode{
				{ID: 2, Hints: []string{models.HintUsername}, Focused: true},
				{ID: 3, Hints: []string{models.HintPassword}},
			},
		}},
	}
}

func loginDataset() models.FieldDataset {
	return models.FieldDataset{
		"work": {DatasetName: "work", Values: map[string]models.FieldValue{
			models.HintUsername: models.TextValue("alice"),
			models.HintPassword: models.TextValue("s3cret"),
		}},
	}
}

type appMocks struct {
	fieldData   *mock.MockFieldDataRepository
	credentials *mock.MockCredentialRepository
}

func newTestApp(t *testing.T, cfg *config.GateConfig, prompt Prompter) (*App, appMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appMocks{
		fieldData:   mock.NewMockFieldDataRepository(ctrl),
		credentials: mock.NewMockCredentialRepository(ctrl),
	}
	var out bytes.Buffer
	storages := &store.Storages{FieldData: m.fieldData, Credentials: m.credentials}
	return NewApp(cfg, storages, prompt, &out, logger.Nop()), m, &out
}

func decodeReply(t *testing.T, out *bytes.Buffer) replyJSON {
	t.Helper()
	var r replyJSON
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	return r
}

// TestApp_Run_SingleDatasetWithCopy verifies the retry-then-success flow of a
// dataset request and the clipboard copy of its password.
func TestApp_Run_SingleDatasetWithCopy(t *testing.T) {
	cfg := &config.GateConfig{Request: config.GateRequest{
		StructurePath:   writeFile(t, "structure.json", loginStructure()),
		DatasetName:     "work",
		CopyToClipboard: true,
	}}
	prompter := &scriptedPrompter{candidates: []models.Credential{"wrong", "hunter2"}}
	app, m, out := newTestApp(t, cfg, prompter)

	var copied string
	app.copyText = func(s string) error {
		copied = s
		return nil
	}

	m.credentials.EXPECT().Get(gomock.Any()).Return(models.Credential("hunter2"), nil).Times(2)
	m.fieldData.EXPECT().
		Lookup(gomock.Any(), []string{models.HintUsername}, []string{models.HintUsername, models.HintPassword}).
		Return(loginDataset(), nil)

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, []gate.Step{gate.Retry, gate.Terminal}, prompter.steps)
	assert.Equal(t, []string{"РАЗБЛОКИРОВАТЬ «work» ДЛЯ com.example.app"}, prompter.titles)

	reply := decodeReply(t, out)
	assert.Equal(t, "success", reply.Outcome)
	assert.Equal(t, "single_dataset", reply.Mode)

	var payload models.SingleDatasetPayload
	require.NoError(t, json.Unmarshal(reply.Payload, &payload))
	assert.Equal(t, "work", payload.Dataset.Name)
	assert.Equal(t, models.TextValue("alice"), payload.Dataset.Values[2])

	assert.Equal(t, "s3cret", copied)
}

func TestApp_Run_FullResponse(t *testing.T) {
	cfg := &config.GateConfig{Request: config.GateRequest{
		StructurePath: writeFile(t, "structure.json", loginStructure()),
	}}
	prompter := &scriptedPrompter{candidates: []models.Credential{"hunter2"}}
	app, m, out := newTestApp(t, cfg, prompter)

	m.credentials.EXPECT().Get(gomock.Any()).Return(models.Credential("hunter2"), nil)
	m.fieldData.EXPECT().Lookup(gomock.Any(), gomock.Any(), gomock.Any()).Return(loginDataset(), nil)

	require.NoError(t, app.Run(context.Background()))

	reply := decodeReply(t, out)
	assert.Equal(t, "success", reply.Outcome)
	assert.Equal(t, "full_response", reply.Mode)

	var payload models.FullResponsePayload
	require.NoError(t, json.Unmarshal(reply.Payload, &payload))
	require.Len(t, payload.Datasets, 1)
	require.NotNil(t, payload.SaveInfo)
	assert.Equal(t, models.SaveTypeUsername|models.SaveTypePassword, payload.SaveInfo.SaveTypes)
}

// TestApp_Run_Cancelled verifies that a prompt closed without a correct
// password yields a failure reply and no stored data is read.
func TestApp_Run_Cancelled(t *testing.T) {
	cfg := &config.GateConfig{Request: config.GateRequest{
		StructurePath: writeFile(t, "structure.json", loginStructure()),
		DatasetName:   "work",
	}}
	app, _, out := newTestApp(t, cfg, &scriptedPrompter{})

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoResult)

	reply := decodeReply(t, out)
	assert.Equal(t, "failure", reply.Outcome)
	assert.Empty(t, reply.Mode)
	assert.Empty(t, reply.Payload)
}

func TestApp_Run_SeedAndImport(t *testing.T) {
	records := []models.FieldRecord{
		{DatasetName: "work", Values: map[string]models.FieldValue{models.HintUsername: models.TextValue("alice")}},
		{DatasetName: "home", Values: map[string]models.FieldValue{models.HintUsername: models.TextValue("bob")}},
	}
	cfg := &config.GateConfig{
		App:     config.GateApp{MasterPassword: "hunter2"},
		Request: config.GateRequest{ImportPath: writeFile(t, "records.json", records)},
	}
	prompter := &scriptedPrompter{}
	app, m, out := newTestApp(t, cfg, prompter)

	gomock.InOrder(
		m.credentials.EXPECT().Set(gomock.Any(), models.Credential("hunter2")).Return(nil),
		m.fieldData.EXPECT().Save(gomock.Any(), records[0]).Return(nil),
		m.fieldData.EXPECT().Save(gomock.Any(), records[1]).Return(nil),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Empty(t, out.String())
	assert.Empty(t, prompter.titles)
}

func TestApp_Run_ImportErrors(t *testing.T) {
	badJSON := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(badJSON, []byte("{not json"), 0o600))

	for _, path := range []string{badJSON, filepath.Join(t.TempDir(), "missing.json")} {
		cfg := &config.GateConfig{Request: config.GateRequest{ImportPath: path}}
		app, _, _ := newTestApp(t, cfg, &scriptedPrompter{})

		err := app.Run(context.Background())
		assert.ErrorContains(t, err, "import records")
	}
}

func TestApp_Run_StoreErrors(t *testing.T) {
	cfg := &config.GateConfig{
		App: config.GateApp{MasterPassword: "hunter2"},
	}
	app, m, _ := newTestApp(t, cfg, &scriptedPrompter{})
	m.credentials.EXPECT().Set(gomock.Any(), gomock.Any()).Return(store.ErrEmptyCredential)

	assert.ErrorIs(t, app.Run(context.Background()), store.ErrEmptyCredential)
}

func TestApp_Run_MissingStructure(t *testing.T) {
	cfg := &config.GateConfig{Request: config.GateRequest{
		StructurePath: filepath.Join(t.TempDir(), "missing.json"),
	}}
	prompter := &scriptedPrompter{}
	app, _, _ := newTestApp(t, cfg, prompter)

	assert.ErrorIs(t, app.Run(context.Background()), os.ErrNotExist)
	assert.Empty(t, prompter.titles)
}

func TestApp_copyPassword_NoPasswordField(t *testing.T) {
	app, _, _ := newTestApp(t, &config.GateConfig{}, &scriptedPrompter{})
	app.copyText = func(string) error {
		t.Fatal("nothing should be copied")
		return nil
	}

	reply, err := models.NewSuccessReply(models.SingleDatasetPayload{Dataset: models.Dataset{
		Name:   "work",
		Values: map[models.AutofillID]models.FieldValue{2: models.TextValue("alice")},
	}})
	require.NoError(t, err)
	assert.ErrorIs(t, app.copyPassword(loginStructure(), reply), ErrNothingToCopy)

	full, err := models.NewSuccessReply(models.FullResponsePayload{})
	require.NoError(t, err)
	assert.ErrorIs(t, app.copyPassword(loginStructure(), full), ErrNothingToCopy)
}

func TestPromptTitle(t *testing.T) {
	s := loginStructure()
	assert.Equal(t, "РАЗБЛОКИРОВАТЬ АВТОЗАПОЛНЕНИЕ ДЛЯ com.example.app", promptTitle(s, models.NewFullResponseRequest(s)))

	anon := &models.Structure{}
	assert.Equal(t, "РАЗБЛОКИРОВАТЬ «home» ДЛЯ форма", promptTitle(anon, models.NewSingleDatasetRequest("home", anon)))
}

// TestApp_Run_InvalidInput verifies that malformed files are rejected before
// anything is stored or a prompt is shown.
func TestApp_Run_InvalidInput(t *testing.T) {
	records := []models.FieldRecord{
		{DatasetName: "work", Values: map[string]models.FieldValue{"shoeSize": models.TextValue("44")}},
	}
	cfg := &config.GateConfig{Request: config.GateRequest{ImportPath: writeFile(t, "records.json", records)}}
	app, _, _ := newTestApp(t, cfg, &scriptedPrompter{})

	assert.ErrorIs(t, app.Run(context.Background()), validators.ErrUnsupportedHint)

	cfg = &config.GateConfig{Request: config.GateRequest{
		StructurePath: writeFile(t, "structure.json", models.Structure{Package: "com.example.app"}),
	}}
	prompter := &scriptedPrompter{}
	app, _, _ = newTestApp(t, cfg, prompter)

	assert.ErrorIs(t, app.Run(context.Background()), validators.ErrNoWindows)
	assert.Empty(t, prompter.titles)
}

// In-process integration tests for the report editing flow: paths
// resolution, the document store, editing sessions, and the reference
// tables working together the way the CLI wires them.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireline-tools/fireline/internal/paths"
	"github.com/fireline-tools/fireline/internal/reference"
	"github.com/fireline-tools/fireline/internal/report"
	"github.com/fireline-tools/fireline/internal/users"
)

func newIntegrationStore(t *testing.T) (*report.Store, string) {
	t.Helper()
	dataDir := t.TempDir()
	store, err := report.NewStore(paths.ReportsDir(dataDir))
	require.NoError(t, err)
	return store, dataDir
}

func TestEditingFlow_CreateEditReopen(t *testing.T) {
	store, _ := newIntegrationStore(t)

	sess, err := report.Create(store, "123456")
	require.NoError(t, err)
	id := sess.Report().Meta.ID

	require.NoError(t, sess.SetField("event", "description", "požár skladu"))
	require.NoError(t, sess.SetField("conditions", "weather", "deštivo"))
	require.NoError(t, sess.SaveAndClose())
	assert.True(t, sess.Closed())

	reopened, err := report.Open(store, id, "123456")
	require.NoError(t, err)
	rep := reopened.Report()
	assert.Equal(t, "požár skladu", rep.Event.Description)
	assert.Equal(t, "deštivo", rep.Conditions.Weather)
	assert.Equal(t, "123456", rep.Meta.OwnerID)
}

func TestEditingFlow_CloseDiscardsUnsavedEdits(t *testing.T) {
	store, _ := newIntegrationStore(t)

	sess, err := report.Create(store, "123456")
	require.NoError(t, err)
	id := sess.Report().Meta.ID

	require.NoError(t, sess.SetField("notes", "text", "předběžný závěr"))
	sess.Close()

	reopened, err := report.Open(store, id, "123456")
	require.NoError(t, err)
	assert.Empty(t, reopened.Report().Notes.Text, "unsaved edit must not survive close")
}

func TestEditingFlow_SummariesAcrossOwners(t *testing.T) {
	store, _ := newIntegrationStore(t)

	for _, owner := range []string{"111111", "222222", "111111"} {
		sess, err := report.Create(store, owner)
		require.NoError(t, err)
		require.NoError(t, sess.SaveAndClose())
	}

	all, err := store.Summaries("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := store.Summaries("111111")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, s := range mine {
		assert.Equal(t, "111111", s.OwnerID)
	}
}

func TestReferenceSeedAndFilterEndToEnd(t *testing.T) {
	dataDir := t.TempDir()
	dbPath := paths.ReferenceDB(dataDir, "")

	require.NoError(t, reference.Seed(dbPath))

	tbl, err := reference.Load(dbPath, reference.TableMaterials)
	require.NoError(t, err)
	require.NotEmpty(t, tbl.Rows)

	got := reference.Filter(tbl, "dřev", "Název")
	require.NotEmpty(t, got.Rows)
	for _, row := range got.Rows {
		assert.Contains(t, row["Název"], "řev")
	}
}

func TestUserStoreBootstrapAndAuth(t *testing.T) {
	dataDir := t.TempDir()
	store, err := users.NewStore(paths.UsersFile(dataDir))
	require.NoError(t, err)

	created, err := store.EnsureAdmin()
	require.NoError(t, err)
	assert.True(t, created)

	u, err := store.Authenticate(users.DefaultAdminOEC, users.DefaultAdminPassword)
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())

	// The credential file lives next to the reports, not inside them.
	assert.Equal(t, filepath.Join(dataDir, "users.json"), paths.UsersFile(dataDir))
}

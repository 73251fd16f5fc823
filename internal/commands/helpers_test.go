package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureCSV = `uuid,folio,fecha_timbrado,nombre,total,tipo,estatus,metodo_pago
u1,F1,2024-01-02 09:00:00,Acme,1000,I,vigente,PUE
u2,F2,2024-01-02 17:00:00,Acme,1000,I,vigente,PUE
u3,F3,2024-01-10 12:00:00,Beta,300,E,vigente,PPD
u4,F4,2024-01-15 08:00:00,Gamma,50,I,cancelado,PUE
u5,F5,2024-02-01 08:00:00,Delta,20,I,vigente,PUE
u6,F6,sin fecha,Omega,99,I,vigente,PUE
`

// project initializes a project in a temp dir and writes csv as its dataset.
func project(t *testing.T, csv string) string {
	t.Helper()
	dir := t.TempDir()
	out, err := runCfdilens(t, "init", dir)
	require.NoError(t, err, out)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Data", "data_gold_main.csv"), []byte(csv), 0o644))
	return dir
}

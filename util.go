package hadoop

import (
	"fmt"
	"os"
	"strings"

	"github.com/doedotdev/uc-cloud-computing-hadoop/mapper"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Hadoop streaming exports job configuration to the task environment with
// dots replaced by underscores.
var taskIDEnv = []string{"mapreduce_task_attempt_id", "mapred_task_id"}

var newTaskID = uuid.NewString

// NewRootCommand builds the mapper command. With no flags it behaves exactly
// like the stock streaming mapper.
func NewRootCommand() *cobra.Command {
	var sentinel string
	var separator string
	var minFields int64
	var lastN int64
	var logLevel string

	var rootCmd = &cobra.Command{
		Use:   "mapper",
		Short: "Hadoop streaming mapper emitting the last fields of each weather row",
		Long: `mapper reads comma-separated rows from standard input, drops the DATE header
and rows with too few columns, and writes "<field>\t1" for every non-empty field
among the last columns of each remaining row.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if minFields < 1 {
				return fmt.Errorf("--min-fields must be >= 1, got %d", minFields)
			}
			if lastN < 1 {
				return fmt.Errorf("--last must be >= 1, got %d", lastN)
			}
			if separator == "" {
				return fmt.Errorf("--separator must not be empty")
			}
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(level)

			cfg := mapper.Config{
				Sentinel:  sentinel,
				Separator: separator,
				MinFields: int(minFields),
				LastN:     int(lastN),
			}
			debug := log.IsLevelEnabled(log.DebugLevel)
			var entry *log.Entry
			if debug {
				entry = log.WithFields(log.Fields{"task": taskID(), "stage": "map"})
				entry.WithField("config", fmt.Sprintf("%+v", cfg)).Debug("mapper start")
			}

			// err is reported by the caller
			st, err := mapper.New(cfg).Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			if debug {
				entry.WithFields(log.Fields{
					"lines":   st.Lines,
					"headers": st.Headers,
					"short":   st.Short,
					"emitted": st.Emitted,
				}).Debug("mapper finish")
			}
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&sentinel, "sentinel", mapper.HeaderSentinel, "First-column value marking the header row")
	rootCmd.PersistentFlags().StringVarP(&separator, "separator", "s", mapper.FieldSeparator, "Field separator")
	rootCmd.PersistentFlags().Int64Var(&minFields, "min-fields", mapper.MinFieldCount, "Rows need more than this many fields")
	rootCmd.PersistentFlags().Int64VarP(&lastN, "last", "n", mapper.EmitFieldCount, "Number of trailing fields to emit")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level written to stderr (trace|debug|info|warn|error)")

	return rootCmd
}

func taskID() string {
	for _, name := range taskIDEnv {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return newTaskID()
}

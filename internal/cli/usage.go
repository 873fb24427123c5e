// Package cli provides help text and usage formatting for the can-exit CLI.
package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `can-exit - Animated two-wave reachability check for grid mazes

USAGE
  can-exit [flags] <maze-file>

  The start is the top-left cell and the finish is the bottom-right cell.
  Text mazes use '#' or '1' for walls and '.', '0' or space for open cells.

FLAGS
  Animation:
    -s, --speed <int>                      Animation speed in steps per second, 2..60 (default: 25)
    --visual                               Animate the search in an interactive terminal UI
    --frames                               Print every animation frame as plain text

  Search:
    --immediate-stuck                      Declare a wave stuck as soon as its frontier is empty
    --max-ticks <int>                      Abort after this many ticks (default: derived from maze size)

  Input Files:
    --format <text|json|yaml|toml>         Maze file format (default: from extension)
    --config <path>                        Path to additional config file

  Outputs:
    --report <path>                        Write a JSON run report
    --png <path>                           Write a PNG of the final board
    --cell-pixels <int>                    Pixel size of one cell in the PNG (default: 16)

  Feature Toggles:
    -v, --verbose                          Enable debug logging

  Help & Version:
    -h, --help                             Show this help text
    --version                              Show version, commit, build date

INTERACTIVE KEYS
  SPACE                                    Start the search
  UP / DOWN                                Adjust animation speed
  ENTER                                    Dismiss the result
  Q, CTRL+C                                Quit

CONFIG FILES
  $XDG_CONFIG_HOME/can-exit/config         Global settings (KEY=VALUE)
  .can-exit/config                         Project settings (KEY=VALUE)

EXIT CODES
  0   Reachable            A path joins the start and the finish
  1   Error                Invalid arguments, unreadable file, misconfiguration
  2   Unreachable          The start and the finish are not connected
  3   InvalidMaze          Maze is empty, ragged, or has blocked corners
  130 Interrupted          SIGINT or SIGTERM received

EXAMPLES
  # Check a maze and print the verdict
  can-exit maze.txt

  # Watch the waves spread
  can-exit --visual maze.txt

  # Print frames slowly and keep a report and a picture
  can-exit --frames --speed 4 --report run.json --png run.png maze.yaml

For more information, see: https://github.com/CodexForgeBR/can-exit
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}

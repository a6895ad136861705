// Command translit transliterates Cyrillic text into the Estonian Latin
// alphabet, one sentence per line.
//
// With arguments, each argument is converted as one sentence. Without
// arguments, lines are read from stdin. The --demo flag prints a fixed
// set of example names instead.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"

	"github.com/teksti/translit/sentence"
)

var demoSentences = []string{
	"Дженни играет с мяц.",
	"Яне говорит на телефоне.",
	"Рассекречены планы выпуска дешевого iPhone Читать далее",
	"Сергей Петропавловск Егоров Алексеев Мясоедов Васильев Подъездов",
	"Орёл Пётр Жёлтый Пугачёв Шёлков Щёкино",
	"Исаев Филин Иосиф Иовлев",
	"Хабаровск Мохнатый Верхоянск Чехов Тихонов Мономах Черных Долгих",
	"Юрьевец Тотьма Нинель Ильич Почтальон",
}

var (
	traceLevel string
	runDemo    bool
)

var rootCmd = &cobra.Command{
	Use:   "translit [sentence ...]",
	Short: "Transliterate Cyrillic text into the Estonian Latin alphabet",
	Long: `translit converts Cyrillic text to Latin script following the
EKI transliteration rules ("Vene keele tähestikust eesti tähestikku",
2005). Arguments are converted as one sentence each; without arguments,
sentences are read from stdin, one per line.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&traceLevel, "trace", "Error", "trace level (Debug|Info|Error)")
	rootCmd.Flags().BoolVar(&runDemo, "demo", false, "convert a fixed set of example sentences")
}

func run(cmd *cobra.Command, args []string) error {
	gtrace.CoreTracer = gologadapter.New()
	switch traceLevel {
	case "Debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "Info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	t := sentence.New()
	if runDemo {
		out, err := t.Sentences(demoSentences)
		if err != nil {
			return err
		}
		for i, s := range out {
			fmt.Printf("%s\n  -> %s\n", demoSentences[i], s)
		}
		return nil
	}
	if len(args) > 0 {
		out, err := t.Sentences(args)
		if err != nil {
			return err
		}
		for _, s := range out {
			fmt.Println(s)
		}
		return nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(t.Sentence(scanner.Text()))
	}
	return scanner.Err()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

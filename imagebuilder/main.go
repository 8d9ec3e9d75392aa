package main

import (
	"os"
	"os/exec"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pterm/pterm"
)

type options struct {
	Directory string `short:"d" long:"directory" default:"." description:"Directory in which the Dockerfiles are"`
}

type listCommand struct{}

type buildCommand struct {
	NoCache bool `long:"no-cache" description:"Build the images without the Docker cache"`
}

type pushCommand struct{}

var opts = options{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)

	parser.AddCommand("list", "Lists images", "Lists the specified images or all of them if none are specified", &listCommand{})
	parser.AddCommand("build", "Builds images", "Builds the specified images or all of them if none are specified", &buildCommand{})
	parser.AddCommand("push", "Pushes images", "Pushes the specified images or all of them if none are specified", &pushCommand{})

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}

func (cmd *listCommand) Execute(args []string) error {
	toList, err := resolveImages(args)

	if err != nil {
		fail(err.Error())
	}

	tableData := pterm.TableData{{"Image", "Version", "Build arguments"}}

	for _, image := range toList {
		var buildArgs []string

		for _, argument := range image.Arguments {
			buildArgs = append(buildArgs, argument.Name+"="+argument.Value)
		}

		tableData = append(tableData, []string{image.Name, image.Version, strings.Join(buildArgs, " ")})
	}

	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(tableData).Render()

	return nil
}

func (cmd *buildCommand) Execute(args []string) error {
	toBuild, err := resolveImages(args)

	if err != nil {
		fail(err.Error())
	}

	var built []string

	for _, image := range toBuild {
		pterm.Info.Println("Building " + image.Tag())

		if err := runDocker(buildArguments(image, opts.Directory, cmd.NoCache)...); err != nil {
			fail("Could not build image " + image.Name + ": " + err.Error())
		}

		built = append(built, image.Name)
	}

	pterm.Success.Println("Built images: " + strings.Join(built, ", "))

	return nil
}

func (cmd *pushCommand) Execute(args []string) error {
	toPush, err := resolveImages(args)

	if err != nil {
		fail(err.Error())
	}

	var pushed []string

	for _, image := range toPush {
		pterm.Info.Println("Pushing " + image.Tag())

		if err := runDocker(pushArguments(image)...); err != nil {
			fail("Could not push image " + image.Name + ": " + err.Error())
		}

		pushed = append(pushed, image.Name)
	}

	pterm.Success.Println("Pushed images: " + strings.Join(pushed, ", "))

	return nil
}

// runDocker runs a Docker command and streams its output to the terminal
func runDocker(args ...string) error {
	pterm.Println("docker " + strings.Join(args, " "))

	command := exec.Command("docker", args...)
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	return command.Run()
}

func fail(message string) {
	pterm.Error.Println(message)
	os.Exit(1)
}

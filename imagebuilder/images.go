package main

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// BuildArgument is an argument of the "docker build" command
type BuildArgument struct {
	Name  string
	Value string
}

// Image describes the version and build arguments of a Docker image
type Image struct {
	Name      string
	Version   string
	Arguments []BuildArgument
}

var alpineVersion = BuildArgument{
	Name:  "ALPINE_VERSION",
	Value: "3.10.1",
}

var berkeleyVersion = BuildArgument{
	Name:  "BERKELEY_VERSION",
	Value: "4.8.30",
}

const bitcoinVersion = "0.18.1"
const litecoinVersion = "0.17.1"

const lndVersion = "0.7.1-beta"

// The images are listed in the order in which they have to be built
var images = []Image{
	{
		Name:    "berkeley-db",
		Version: berkeleyVersion.Value,
		Arguments: []BuildArgument{
			alpineVersion,
		},
	},
	{
		Name:    "bitcoin-core",
		Version: bitcoinVersion,
		Arguments: []BuildArgument{
			alpineVersion,
			berkeleyVersion,
		},
	},
	{
		Name:    "litecoin-core",
		Version: litecoinVersion,
		Arguments: []BuildArgument{
			alpineVersion,
			berkeleyVersion,
		},
	},
	{
		Name:    "lnd",
		Version: lndVersion,
		Arguments: []BuildArgument{
			alpineVersion,
			{
				Name:  "GOLANG_VERSION",
				Value: "1.12.9-alpine",
			},
		},
	},
	{
		Name:    "regtest",
		Version: "1.0.0",
		Arguments: []BuildArgument{
			alpineVersion,
			{
				Name:  "BITCOIN_VERSION",
				Value: bitcoinVersion,
			},
			{
				Name:  "LITECOIN_VERSION",
				Value: litecoinVersion,
			},
			{
				Name:  "LND_VERSION",
				Value: lndVersion,
			},
		},
	},
}

// Tag returns the Docker Hub tag of an image
func (image Image) Tag() string {
	return "boltz/" + image.Name + ":" + image.Version
}

// resolveImages returns all available images if none was specified
func resolveImages(names []string) ([]Image, error) {
	if len(names) == 0 {
		return images, nil
	}

	var resolved []Image

	for _, name := range names {
		image, err := getBuildDetails(name)

		if err != nil {
			return nil, err
		}

		resolved = append(resolved, image)
	}

	return resolved, nil
}

// getBuildDetails gets the build details of a single image
func getBuildDetails(name string) (Image, error) {
	for _, image := range images {
		if image.Name == name {
			return image, nil
		}
	}

	return Image{}, errors.New("could not find image " + name)
}

// buildArguments assembles the arguments of the "docker build" command for an image
func buildArguments(image Image, directory string, noCache bool) []string {
	args := []string{
		"build",
		"-t", image.Tag(),
		"-f", filepath.Join(directory, image.Name, "Dockerfile"),
	}

	// The regtest image doesn't need its version as a build argument
	if image.Name != "regtest" {
		args = append(args, "--build-arg", "VERSION="+image.Version)
	}

	for _, argument := range image.Arguments {
		args = append(args, "--build-arg", argument.Name+"="+argument.Value)
	}

	if noCache {
		args = append(args, "--no-cache")
	}

	return append(args, directory)
}

// pushArguments assembles the arguments of the "docker push" command for an image
func pushArguments(image Image) []string {
	return []string{"push", image.Tag()}
}

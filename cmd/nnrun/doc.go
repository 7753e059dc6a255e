// Command nnrun describes, resolves and prepares training runs from a config file.
//
//	nnrun init                       write a default config.yaml
//	nnrun describe                   print the parameters
//	nnrun resolve                    print the strategy for the architecture
//	nnrun prepare --output-bits 4    build the network and optimizer
package main

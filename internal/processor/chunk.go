package processor

import "codeberg.org/snonux/espada/internal/batch"

// Chunk splits the words of a pronunciation dictionary into numbered word
// list files in the output directory.
func (p *Processor) Chunk(wordList string) error {
	rows, err := batch.ReadWordList(wordList)
	if err != nil {
		return err
	}

	paths, err := batch.WriteChunks(rows, p.flags.OutputDir, p.flags.ChunkPrefix, p.flags.ChunkSize)
	if err != nil {
		return err
	}

	p.printf("Split %d words into %d files of up to %d words in %s\n",
		len(rows), len(paths), p.flags.ChunkSize, p.flags.OutputDir)
	return nil
}
